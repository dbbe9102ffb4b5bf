// Package format renders amounts and dates for receipts and other
// presentation surfaces. The core never depends on it.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency formats an amount in rupees with thousands separators: "Rs. 11,000.00".
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "Rs. " + b.String() + "." + fracPart
	if neg {
		out = "Rs. -" + b.String() + "." + fracPart
	}
	return out
}

// Date formats a date for display: "02 Jan, 2006".
func Date(t time.Time) string {
	return t.Format("02 Jan, 2006")
}
