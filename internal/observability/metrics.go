package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	LeadRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "lead_api_requests_total", Help: "Lead API requests"},
		[]string{"endpoint", "status"},
	)
	LeadRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "lead_rejected_total", Help: "Submissions rejected by boundary validation"},
		[]string{"field"},
	)
	TelegramSend = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "telegram_send_total", Help: "Telegram send outcomes"},
		[]string{"result", "http_status"},
	)
	TelegramLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "telegram_send_latency_seconds", Help: "Telegram send latency"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(LeadRequests, LeadRejected, TelegramSend, TelegramLatency)
}
