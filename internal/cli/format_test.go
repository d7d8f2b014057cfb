package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{250000, "250,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDollars(t *testing.T) {
	if got := FormatDollars(1_250_000); got != "$1,250,000" {
		t.Errorf("FormatDollars = %q", got)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("hunter2secret"); got != "hunt****" {
		t.Errorf("MaskSecret = %q", got)
	}
	if got := MaskSecret("ab"); got != "****" {
		t.Errorf("MaskSecret short = %q", got)
	}
}
