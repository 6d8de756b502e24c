package kernel

import (
	"fmt"
	"strings"
)

// Money represents a peso amount. Amounts flow in from cart arithmetic and the
// shipping tariff and out to the persisted numeric columns, so a float64-backed
// type mirrors both ends; display rounding happens only in Format.
type Money float64

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// Format renders the amount as a localized peso string with a thousands
// separator and two decimal places.
//
// Example:
//
//	kernel.Money(1234.5).Format() // "₱1,234.50"
func (m Money) Format() string {
	negative := m < 0
	v := float64(m)
	if negative {
		v = -v
	}

	fixed := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(fixed, ".", 2)
	whole, frac := parts[0], parts[1]

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("₱")
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(digit)
	}
	b.WriteString(".")
	b.WriteString(frac)
	return b.String()
}
