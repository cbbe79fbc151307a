package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlead/internal/lead"
)

func TestClientSubmitOK(t *testing.T) {
	var got lead.Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/leads" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	err := c.Submit(context.Background(), lead.Submission{Name: "Olga", Phone: "+375291234567"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.Name != "Olga" {
		t.Fatalf("server saw %+v", got)
	}
}

func TestClientSubmitAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Имя обязательно"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	err := c.Submit(context.Background(), lead.Submission{})
	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if aerr.Status != http.StatusBadRequest || aerr.Message != "Имя обязательно" {
		t.Fatalf("got %+v", aerr)
	}
}

func TestClientSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	err := c.Submit(context.Background(), lead.Submission{Name: "Olga", Phone: "+375291234567"})
	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if aerr.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d", aerr.Status)
	}
}
