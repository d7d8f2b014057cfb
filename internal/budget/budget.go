// Package budget maps slider positions to currency values for the intake form.
//
// The form never handles raw dollar amounts: a budget range is a pair of
// indices into an immutable step table, so the slider works over a small
// ordinal domain regardless of price magnitude. Steps are finer near common
// price points ($200K-$1M) and coarser at the extremes.
package budget

import "fmt"

// Table is an ordered list of selectable USD values with non-uniform
// increments. Values are strictly increasing.
type Table []int64

// Standard returns the canonical step table used by the intake form.
func Standard() Table {
	t := make(Table, 0, 37)

	// $200K to $1M in $50K steps
	for v := int64(200_000); v <= 1_000_000; v += 50_000 {
		t = append(t, v)
	}
	// $1.1M to $2M in $100K steps
	for v := int64(1_100_000); v <= 2_000_000; v += 100_000 {
		t = append(t, v)
	}
	// $2.5M to $5M in $500K steps
	for v := int64(2_500_000); v <= 5_000_000; v += 500_000 {
		t = append(t, v)
	}
	// Top end: whole millions only
	t = append(t, 6_000_000, 7_000_000, 8_000_000, 10_000_000)

	return t
}

// MaxIndex returns the highest valid index into the table.
func (t Table) MaxIndex() int {
	return len(t) - 1
}

// Resolve looks up both indices of a budget range and returns the
// corresponding dollar values. The UI clamps indices to table bounds, so an
// out-of-bounds index or an inverted pair is a precondition violation and
// reported as an error rather than a panic.
func (t Table) Resolve(lo, hi int) (minValue, maxValue int64, err error) {
	if lo < 0 || lo >= len(t) || hi < 0 || hi >= len(t) {
		return 0, 0, fmt.Errorf("budget: index pair (%d, %d) out of table bounds [0, %d]", lo, hi, len(t)-1)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("budget: inverted range (%d > %d)", lo, hi)
	}
	return t[lo], t[hi], nil
}

// Format renders a table value for display.
//
// Canonical rule: values at or above $1M render as "$<n>M", dropping the
// decimal when the millions are whole ("$2M", "$1.5M"); values below render
// as integer thousands ("$750K"). Every value in the Standard table is a
// multiple of $50K, so no rounding occurs.
func Format(v int64) string {
	if v >= 1_000_000 {
		if v%1_000_000 == 0 {
			return fmt.Sprintf("$%dM", v/1_000_000)
		}
		return fmt.Sprintf("$%.1fM", float64(v)/1_000_000)
	}
	return fmt.Sprintf("$%dK", v/1_000)
}

// Label renders a budget range for display, e.g. "$500K – $1.2M".
func (t Table) Label(lo, hi int) string {
	minV, maxV, err := t.Resolve(lo, hi)
	if err != nil {
		return ""
	}
	return Format(minV) + " – " + Format(maxV)
}
