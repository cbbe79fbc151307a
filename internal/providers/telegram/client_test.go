package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := &Client{
		BotToken: "123:token",
		ChatID:   "-100500",
		BaseURL:  srv.URL,
		HTTP:     &http.Client{Timeout: 2 * time.Second},
	}
	return c, srv
}

func TestSendMessageOK(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	})
	defer srv.Close()

	resp, status, _, err := c.SendMessage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !resp.OK || status != http.StatusOK {
		t.Fatalf("resp=%+v status=%d", resp, status)
	}
	if gotPath != "/bot123:token/sendMessage" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["chat_id"] != "-100500" || gotBody["text"] != "hello" || gotBody["parse_mode"] != "HTML" {
		t.Fatalf("body = %v", gotBody)
	}
}

func TestSendMessageTrustsOKFlag(t *testing.T) {
	// HTTP 200 but ok=false must still be an error.
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})
	defer srv.Close()

	_, status, raw, err := c.SendMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for ok=false")
	}
	if err.Error() != "Bad Request: chat not found" {
		t.Fatalf("err = %v", err)
	}
	if status != http.StatusOK || len(raw) == 0 {
		t.Fatalf("status=%d raw=%q", status, raw)
	}
}

func TestSendMessageHTTPError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`oops`))
	})
	defer srv.Close()

	_, status, _, err := c.SendMessage(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if status != http.StatusBadGateway {
		t.Fatalf("status = %d", status)
	}
}

func TestConfigured(t *testing.T) {
	if (&Client{}).Configured() {
		t.Fatal("empty client reported configured")
	}
	if (&Client{BotToken: "t"}).Configured() {
		t.Fatal("missing chat id reported configured")
	}
	if !(&Client{BotToken: "t", ChatID: "c"}).Configured() {
		t.Fatal("full client reported unconfigured")
	}
}
