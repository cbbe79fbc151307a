package lead

import "strings"

// CountryCode is the dialing prefix every accepted number must start with.
const CountryCode = "375"

// PhoneDigits is the full length of a valid number, country code included.
const PhoneDigits = 12

// Digits returns only the decimal digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders a digit sequence in the national display pattern
// +375 (XX) XXX-XX-XX. Any formatting noise already in the input is ignored:
// the output depends only on the digit sequence, truncated to 12 digits, so
// the function can reformat the field on every keystroke. Partial sequences
// get a partial rendering, one punctuation group at a time.
func FormatPhone(raw string) string {
	d := Digits(raw)
	if len(d) > PhoneDigits {
		d = d[:PhoneDigits]
	}

	var b strings.Builder
	b.WriteByte('+')
	b.WriteString(d[:min(len(d), 3)])
	if len(d) > 3 {
		b.WriteString(" (")
		b.WriteString(d[3:min(len(d), 5)])
	}
	if len(d) > 5 {
		b.WriteString(") ")
		b.WriteString(d[5:min(len(d), 8)])
	}
	if len(d) > 8 {
		b.WriteByte('-')
		b.WriteString(d[8:min(len(d), 10)])
	}
	if len(d) > 10 {
		b.WriteByte('-')
		b.WriteString(d[10:])
	}
	return b.String()
}
