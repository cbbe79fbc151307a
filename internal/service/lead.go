package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"fitlead/internal/lead"
	"fitlead/internal/observability"
	"fitlead/internal/providers/telegram"
	"fitlead/internal/sanitize"
	"fitlead/internal/util"
)

// Sender is the outbound messaging boundary.
type Sender interface {
	Configured() bool
	SendMessage(ctx context.Context, text string) (telegram.SendResponse, int, []byte, error)
}

// ErrNotConfigured means the messaging credentials are absent. Operator
// problem, not a caller problem; the caller only ever sees a generic error.
var ErrNotConfigured = errors.New("telegram credentials missing")

// SendError wraps a failed delivery to the messaging API, keeping the raw
// upstream response for server-side logs.
type SendError struct {
	HTTPStatus int
	Raw        []byte
	Err        error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("telegram send: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

const messageTemplate = "🏋️ <b>Новая заявка на пробное занятие!</b>\n\n👤 Имя: {name}\n📱 Телефон: {phone}\n📋 Направление: {direction}"

const directionFallback = "Не указано"

// Boundary-side sanitization limits.
const (
	maxNameLen      = 100
	maxPhoneLen     = 20
	maxDirectionLen = 100
)

// LeadService is the receiving half of the pipeline: it sanitizes and
// re-validates every submission as if the form never ran, composes the
// notification message and sends it exactly once. No retry, no queue,
// nothing persisted.
type LeadService struct {
	Sender      Sender
	Validator   *lead.Validator
	Limiter     *rate.Limiter
	Breaker     *gobreaker.CircuitBreaker
	SendTimeout time.Duration
}

// Submit returns nil on delivery, *lead.ValidationError for caller mistakes,
// ErrNotConfigured or *SendError otherwise.
func (s *LeadService) Submit(ctx context.Context, sub lead.Submission) error {
	sub.Name = sanitize.Clean(sub.Name, maxNameLen)
	sub.Phone = sanitize.Clean(sub.Phone, maxPhoneLen)
	sub.Direction = sanitize.Clean(sub.Direction, maxDirectionLen)

	if err := s.Validator.Validate(sub); err != nil {
		return err
	}
	if !s.Sender.Configured() {
		return ErrNotConfigured
	}

	direction := sub.Direction
	if direction == "" {
		direction = directionFallback
	}
	// Escaping runs on every field right before interpolation, even though
	// Clean already ran. Separate layers.
	text := util.RenderTemplate(messageTemplate, map[string]string{
		"name":      sanitize.EscapeHTML(sub.Name),
		"phone":     sanitize.EscapeHTML(sub.Phone),
		"direction": sanitize.EscapeHTML(direction),
	})

	return s.send(ctx, text)
}

func (s *LeadService) send(ctx context.Context, text string) error {
	if s.Limiter != nil {
		waitCtx, cancelWait := context.WithTimeout(ctx, 2*time.Second)
		err := s.Limiter.Wait(waitCtx)
		cancelWait()
		if err != nil {
			observability.TelegramSend.WithLabelValues("rate_limited_local", "0").Inc()
			return &SendError{Err: err}
		}
	}

	start := time.Now()
	resAny, err := s.executeWithBreaker(ctx, text)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		observability.TelegramSend.WithLabelValues("cb_open", "0").Inc()
		return &SendError{Err: err}
	}
	if err != nil {
		var se *SendError
		if errors.As(err, &se) {
			observability.TelegramSend.WithLabelValues("error", strconv.Itoa(se.HTTPStatus)).Inc()
			return se
		}
		observability.TelegramSend.WithLabelValues("error", "0").Inc()
		return &SendError{Err: err}
	}

	res := resAny.(sendResult)
	observability.TelegramSend.WithLabelValues("ok", strconv.Itoa(res.httpStatus)).Inc()
	observability.TelegramLatency.Observe(time.Since(start).Seconds())
	return nil
}

func (s *LeadService) executeWithBreaker(ctx context.Context, text string) (any, error) {
	call := func() (any, error) {
		timeout := s.SendTimeout
		if timeout <= 0 {
			timeout = 6 * time.Second
		}
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		resp, httpStatus, raw, callErr := s.Sender.SendMessage(reqCtx, text)
		if callErr != nil {
			return nil, &SendError{HTTPStatus: httpStatus, Raw: raw, Err: callErr}
		}
		return sendResult{resp: resp, httpStatus: httpStatus}, nil
	}

	if s.Breaker == nil {
		return call()
	}
	return s.Breaker.Execute(call)
}

type sendResult struct {
	resp       telegram.SendResponse
	httpStatus int
}
