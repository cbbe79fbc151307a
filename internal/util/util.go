package util

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewLeadID returns a sortable id used to correlate one submission's log
// lines. Leads are never stored, so the id exists only for diagnostics.
func NewLeadID() string {
	t := time.Now().UTC()
	return "lead_" + ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

// RenderTemplate does simple {var} replacement in the message body.
func RenderTemplate(body string, vars map[string]string) string {
	out := body
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}
