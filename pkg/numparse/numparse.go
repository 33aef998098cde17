// Package numparse converts locale-flexible numeric strings into decimals.
//
// Accepted grammar, applied in order:
//  1. surrounding whitespace is trimmed;
//  2. a dot followed by exactly a three-digit group (and then a non-digit or
//     the end of the string) is treated as a thousands separator and removed,
//     so "1.234,56" becomes "1234,56";
//  3. a remaining comma is treated as the decimal separator and becomes a dot;
//  4. every rune that is not a digit, a dot or a leading minus is dropped
//     (currency symbols, spaces, stray letters).
//
// What is left must parse as a plain number.
package numparse

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a locale-flexible numeric string into a decimal.
func ParseAmount(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty numeric input")
	}

	s = stripThousandsDots(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = stripNonNumeric(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric input %q: %w", value, err)
	}
	return d, nil
}

// ParsePercent parses a locale-flexible percentage string (e.g. "4,5") and
// returns it as a fraction (0.045).
func ParsePercent(value string) (decimal.Decimal, error) {
	d, err := ParseAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(decimal.NewFromInt(100)), nil
}

// stripThousandsDots removes dots that look like thousands separators: a dot
// directly followed by a three-digit group that ends the number or is followed
// by another separator.
func stripThousandsDots(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' && isThousandsGroup(s, i+1) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isThousandsGroup(s string, from int) bool {
	if from+3 > len(s) {
		return false
	}
	for i := from; i < from+3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return from+3 == len(s) || s[from+3] < '0' || s[from+3] > '9'
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case (c >= '0' && c <= '9') || c == '.':
			b.WriteByte(c)
		case c == '-' && b.Len() == 0:
			b.WriteByte(c)
		}
	}
	return b.String()
}
