package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"fitlead/internal/config"
	"fitlead/internal/httpapi"
	"fitlead/internal/httpserver"
	"fitlead/internal/lead"
	"fitlead/internal/logging"
	"fitlead/internal/observability"
	"fitlead/internal/providers/telegram"
	"fitlead/internal/service"
	"fitlead/internal/util"
)

func main() {
	cfg := config.LoadAPI()
	logging.Init("api", cfg.LogFormat)

	observability.Register(prometheus.DefaultRegisterer)

	tg := &telegram.Client{
		BotToken: cfg.TelegramBotToken,
		ChatID:   cfg.TelegramChatID,
		BaseURL:  cfg.TelegramBaseURL,
		HTTP:     &http.Client{Timeout: cfg.TelegramTimeout},
	}
	if !tg.Configured() {
		// Keep serving: requests get a structured 500 until the operator
		// fixes the deployment.
		slog.Error("telegram credentials missing, submissions will fail")
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.TelegramRPS), cfg.TelegramBurst)
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "telegram",
		MaxRequests: 3,
		Timeout:     20 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= 10 },
	})

	svc := &service.LeadService{
		Sender:      tg,
		Validator:   lead.NewBoundaryValidator(),
		Limiter:     limiter,
		Breaker:     breaker,
		SendTimeout: cfg.TelegramTimeout,
	}

	s := httpserver.New()
	api := &httpserver.API{
		Svc:           svc,
		IDGen:         util.NewLeadID,
		AllowedOrigin: cfg.AllowedOrigin,
	}
	api.Register(s.Mux)
	s.Mux.Use(httpserver.Metrics(observability.LeadRequests))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpserver.Logging(s.Mux),
	}

	// ops listener: metrics + probes
	ops := httpapi.New()
	ops.Mux.HandleFunc("/healthz", httpapi.Healthz())
	ops.Mux.HandleFunc("/readyz", httpapi.Readyz(2*time.Second))
	opsSrv := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: ops.Mux,
	}

	opsErrCh := make(chan error, 1)
	go func() {
		slog.Info("ops listening", "port", cfg.MetricsPort)
		opsErrCh <- opsSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			slog.Info("api shutdown", "signal", sig.String())
		case err := <-opsErrCh:
			if err != nil && err != http.ErrServerClosed {
				slog.Error("ops server failed", "err", err)
			}
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = opsSrv.Shutdown(shutdownCtx)
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("api listening", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("api server failed", "err", err)
		os.Exit(1)
	}
}
