package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fitlead/internal/lead"
)

// Client posts finished submissions to the lead intake API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// APIError is a non-success reply from the intake API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lead api %d: %s", e.Status, e.Message)
}

type apiResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) Submit(ctx context.Context, sub lead.Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(c.BaseURL, "/") + "/v1/leads"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	var out apiResponse
	_ = json.Unmarshal(b, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "lead submit failed"
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	return nil
}
