package lead

import "testing"

func TestFormatPhoneProgressive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "+"},
		{"3", "+3"},
		{"37", "+37"},
		{"375", "+375"},
		{"3752", "+375 (2"},
		{"37529", "+375 (29"},
		{"375291", "+375 (29) 1"},
		{"37529123", "+375 (29) 123"},
		{"375291234", "+375 (29) 123-4"},
		{"3752912345", "+375 (29) 123-45"},
		{"37529123456", "+375 (29) 123-45-6"},
		{"375291234567", "+375 (29) 123-45-67"},
	}
	for _, c := range cases {
		if got := FormatPhone(c.in); got != c.want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPhoneDigitRoundTrip(t *testing.T) {
	full := "375291234567"
	for n := 0; n <= len(full); n++ {
		in := full[:n]
		if got := Digits(FormatPhone(in)); got != in {
			t.Fatalf("round trip broke for %d digits: got %q, want %q", n, got, in)
		}
	}
}

func TestFormatPhoneIgnoresNoise(t *testing.T) {
	clean := FormatPhone("375291234567")
	noisy := FormatPhone("+375 (29) 123-45-67")
	if clean != noisy {
		t.Fatalf("formatting noise changed output: %q vs %q", clean, noisy)
	}
	// Reformatting its own output is a fixed point.
	if again := FormatPhone(clean); again != clean {
		t.Fatalf("reformat not stable: %q -> %q", clean, again)
	}
}

func TestFormatPhoneTruncates(t *testing.T) {
	if got := FormatPhone("3752912345679999"); got != "+375 (29) 123-45-67" {
		t.Fatalf("expected truncation to 12 digits, got %q", got)
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("+375 (29) abc 123-45-67"); got != "375291234567" {
		t.Fatalf("Digits = %q", got)
	}
	if got := Digits("no digits"); got != "" {
		t.Fatalf("Digits = %q, want empty", got)
	}
}
