package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"fitlead/internal/lead"
	"fitlead/internal/observability"
	"fitlead/internal/service"
)

type API struct {
	Svc   *service.LeadService
	IDGen func() string

	// AllowedOrigin is echoed in CORS headers; empty means "*".
	AllowedOrigin string
}

func (a *API) Register(r *mux.Router) {
	r.HandleFunc("/v1/leads", a.handleCreateLead).Methods(http.MethodPost)
	r.HandleFunc("/v1/leads", a.handlePreflight).Methods(http.MethodOptions)
}

func (a *API) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	a.cors(w)
	leadID := a.IDGen()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		// A body we cannot parse is the one unexpected path; answer with
		// the generic 500 rather than leaking decode detail.
		slog.Error("lead body decode failed", "err", err, "lead_id", leadID)
		writeError(w, http.StatusInternalServerError, ErrInternal)
		return
	}

	// The payload is untrusted in shape as well as content: non-string
	// fields coerce to empty and fail validation downstream.
	sub := lead.Submission{
		Name:      stringField(body, "name"),
		Phone:     stringField(body, "phone"),
		Direction: stringField(body, "direction"),
	}

	if err := a.Svc.Submit(r.Context(), sub); err != nil {
		var verr *lead.ValidationError
		var serr *service.SendError
		switch {
		case errors.As(err, &verr):
			// Caller-correctable, not an incident.
			slog.Info("lead rejected", "lead_id", leadID, "field", verr.Field)
			observability.LeadRejected.WithLabelValues(verr.Field).Inc()
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrNotConfigured):
			slog.Error("telegram credentials missing", "lead_id", leadID)
			writeError(w, http.StatusInternalServerError, ErrNotConfigured)
		case errors.As(err, &serr):
			slog.Error("telegram send failed",
				"err", err,
				"lead_id", leadID,
				"http_status", serr.HTTPStatus,
				"response", string(serr.Raw),
			)
			writeError(w, http.StatusInternalServerError, ErrSendFailed)
		default:
			slog.Error("lead submit failed", "err", err, "lead_id", leadID)
			writeError(w, http.StatusInternalServerError, ErrSendFailed)
		}
		return
	}

	slog.Info("lead forwarded", "lead_id", leadID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handlePreflight(w http.ResponseWriter, r *http.Request) {
	a.cors(w)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) cors(w http.ResponseWriter) {
	origin := a.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

func stringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
