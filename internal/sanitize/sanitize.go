// Package sanitize strips script-injection vectors from free text and
// escapes HTML entities. The two are independent defensive layers: Clean
// runs when a value enters a trust boundary, EscapeHTML runs again at the
// point a value is interpolated into a message body.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	jsProto     = regexp.MustCompile(`(?i)javascript:`)
	onAttr      = regexp.MustCompile(`(?i)on\w+=`)
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// Clean removes angle brackets, the javascript: protocol prefix and inline
// event-handler patterns (onerror= and friends), trims surrounding
// whitespace and truncates to maxLen characters. Step order matters: the
// length cap runs last so a truncation can never re-expose a stripped
// pattern.
func Clean(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsProto.ReplaceAllString(s, "")
	s = onAttr.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if maxLen >= 0 {
		if r := []rune(s); len(r) > maxLen {
			s = string(r[:maxLen])
		}
	}
	return s
}

// EscapeHTML substitutes the five HTML metacharacters & < > " ' with their
// entities. Text already free of them passes through unchanged.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
