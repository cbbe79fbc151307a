package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://api.telegram.org"

// Client talks to the Telegram Bot API. One method, one outbound call.
type Client struct {
	BotToken string
	ChatID   string
	BaseURL  string
	HTTP     *http.Client
}

// Configured reports whether both the bot credential and the destination
// chat are set. Callers must check this before sending so a misconfigured
// deployment fails with a clean error instead of a 404 from the API.
func (c *Client) Configured() bool {
	return c.BotToken != "" && c.ChatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type SendResponse struct {
	OK          bool            `json:"ok"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// SendMessage posts text to the configured chat with HTML parse mode enabled
// (the message template relies on <b> and line breaks). The Bot API reports
// failures in its own ok flag, so that is what decides success, not the HTTP
// status alone. Returns the parsed response, HTTP status and raw body for
// server-side diagnosis.
func (c *Client) SendMessage(ctx context.Context, text string) (SendResponse, int, []byte, error) {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.ChatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return SendResponse{}, 0, nil, err
	}

	baseURL := strings.TrimRight(c.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	endpoint := baseURL + "/bot" + c.BotToken + "/sendMessage"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return SendResponse{}, 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return SendResponse{}, 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	var out SendResponse
	_ = json.Unmarshal(b, &out)

	if !out.OK {
		if out.Description != "" {
			return out, resp.StatusCode, b, errors.New(out.Description)
		}
		return out, resp.StatusCode, b, errors.New("telegram send failed")
	}
	return out, resp.StatusCode, b, nil
}
