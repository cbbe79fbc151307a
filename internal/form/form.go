// Package form is the client half of the pipeline: the contact-form state,
// the keystroke-level phone normalizer and the submission flow with its
// user-facing notices. Pure data in, pure data out; no rendering concerns.
package form

import (
	"context"
	"errors"
	"sync/atomic"

	"fitlead/internal/lead"
	"fitlead/internal/sanitize"
)

type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is what the visitor sees after an action: a toast, nothing more.
type Notice struct {
	Level NoticeLevel
	Text  string
}

const (
	phonePrefix = "+" + lead.CountryCode

	successText = "Заявка отправлена! Мы свяжемся с вами в ближайшее время."
	busyText    = "Заявка уже отправляется, подождите."
)

// Form-side sanitization limits, applied after validation passes.
const (
	maxNameLen      = 100
	maxDirectionLen = 100
)

// Submitter is the transport a finished submission is handed to.
type Submitter interface {
	Submit(ctx context.Context, sub lead.Submission) error
}

// Form holds contact-form state between keystrokes and submits. SetPhone and
// Submit are called from UI event handlers; the in-flight guard keeps a
// second submit from firing while one is pending, so one user action can
// never produce two notifications.
type Form struct {
	Name      string
	Phone     string
	Direction string

	// ContactPhone is offered as the manual path when electronic
	// submission fails; the visitor is never left without a way through.
	ContactPhone string

	client    Submitter
	validator *lead.Validator
	busy      atomic.Bool
}

func New(client Submitter, contactPhone string) *Form {
	return &Form{
		Phone:        phonePrefix,
		ContactPhone: contactPhone,
		client:       client,
		validator:    lead.NewFormValidator(),
	}
}

// SetPhone reformats the phone field on an input event. Only the digit
// sequence survives; display punctuation is recomputed from scratch.
func (f *Form) SetPhone(raw string) {
	f.Phone = lead.FormatPhone(raw)
}

// Submitting reports whether a submission is pending, i.e. whether the
// submit control should be disabled.
func (f *Form) Submitting() bool { return f.busy.Load() }

// Submit runs validate, sanitize and the network call, in that order.
// Validation failures never reach the network; transport failures surface
// the manual-contact fallback. On success the fields reset to their initial
// state, phone back to the bare country prefix.
func (f *Form) Submit(ctx context.Context) Notice {
	if !f.busy.CompareAndSwap(false, true) {
		return Notice{Level: NoticeWarning, Text: busyText}
	}
	defer f.busy.Store(false)

	sub := lead.Submission{Name: f.Name, Phone: f.Phone, Direction: f.Direction}
	if err := f.validator.Validate(sub); err != nil {
		var verr *lead.ValidationError
		if errors.As(err, &verr) {
			return Notice{Level: NoticeWarning, Text: verr.Message}
		}
		return Notice{Level: NoticeWarning, Text: err.Error()}
	}

	sub.Name = sanitize.Clean(sub.Name, maxNameLen)
	sub.Direction = sanitize.Clean(sub.Direction, maxDirectionLen)

	if err := f.client.Submit(ctx, sub); err != nil {
		// No retry: the fallback phone is the recovery path.
		return Notice{Level: NoticeError, Text: f.fallbackText()}
	}

	f.reset()
	return Notice{Level: NoticeSuccess, Text: successText}
}

func (f *Form) fallbackText() string {
	return "Не удалось отправить заявку. Позвоните нам: " + f.ContactPhone
}

func (f *Form) reset() {
	f.Name = ""
	f.Phone = phonePrefix
	f.Direction = ""
}
