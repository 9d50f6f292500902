package report

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount the way the dashboard displays money:
// yuan sign, thousands grouping, two decimal places. Formatting is purely a
// display concern; sums are accumulated unrounded.
func FormatCurrency(v float64) string {
	sign := ""
	if math.Signbit(v) {
		sign = "-"
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("¥")
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
