// Package cli provides formatting helpers for terminal output.
package cli

import "strconv"

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	remainder := len(s) % 3
	if remainder > 0 {
		out = append(out, s[:remainder]...)
	}
	for i := remainder; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// FormatDollars renders a full-precision dollar amount, e.g. "$1,250,000".
func FormatDollars(v int64) string {
	return "$" + FormatNumber(v)
}

// MaskSecret hides all but the first four characters of a secret.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
