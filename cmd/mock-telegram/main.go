// Command mock-telegram is a stand-in for the Telegram Bot API, for local
// runs and smoke tests. It records every sendMessage call and can inject
// failures via MOCK_OUTCOME.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
)

type mockConfig struct {
	Port string `envconfig:"PORT" default:"8081"`

	// Outcome of every sendMessage call: ok | api_error | http_500 | timeout
	Outcome string `envconfig:"MOCK_OUTCOME" default:"ok"`
	DelayMs int    `envconfig:"MOCK_DELAY_MS" default:"0"`
}

type sentMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type server struct {
	cfg mockConfig

	mu       sync.Mutex
	messages []sentMessage
	nextID   int
}

func main() {
	var cfg mockConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("mock telegram config load failed", "err", err)
		os.Exit(1)
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h).With("service", "mock-telegram"))

	s := &server{cfg: cfg, nextID: 1}

	router := mux.NewRouter()
	router.HandleFunc("/bot{token}/sendMessage", s.handleSendMessage).Methods(http.MethodPost)
	router.HandleFunc("/messages", s.handleListMessages).Methods(http.MethodGet)

	slog.Info("mock telegram listening", "port", cfg.Port, "outcome", cfg.Outcome)
	if err := http.ListenAndServe(":"+cfg.Port, loggingMiddleware(router)); err != nil {
		slog.Error("mock telegram server failed", "err", err)
		os.Exit(1)
	}
}

func (s *server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	if s.cfg.DelayMs > 0 {
		time.Sleep(time.Duration(s.cfg.DelayMs) * time.Millisecond)
	}

	switch s.cfg.Outcome {
	case "api_error":
		// HTTP 200 with ok=false: clients must trust the ok flag.
		writeJSON(w, http.StatusOK, map[string]any{
			"ok": false, "error_code": 400, "description": "Bad Request: chat not found",
		})
		return
	case "http_500":
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok": false, "error_code": 500, "description": "Internal Server Error",
		})
		return
	case "timeout":
		time.Sleep(30 * time.Second)
	}

	var msg sentMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "error_code": 400, "description": "Bad Request: can't parse JSON",
		})
		return
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"result": map[string]any{"message_id": id},
	})
}

func (s *server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	msgs := make([]sentMessage, len(s.messages))
	copy(msgs, s.messages)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, msgs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		slog.Info("mock telegram request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
