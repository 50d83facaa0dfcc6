// Package core holds the domain types and money handling utilities.
//
// Amounts are kept in integer cents so that equality checks and monthly
// sums stay exact; parsing and rendering convert at the edges.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmountToCents converts a decimal string to signed cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, an
// optional leading minus, and performs half-up rounding on the third
// decimal place. Returns ErrInvalidAmount for anything that is not a
// plain finite decimal (exponents, inf/nan spellings, stray characters).
//
// Examples:
//
//	ParseAmountToCents("12.5")    -> 1250, nil
//	ParseAmountToCents("12,346")  -> 1235, nil (rounds up)
//	ParseAmountToCents("-3")      -> -300, nil
func ParseAmountToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	// A sign with nothing after it is not a number.
	if s == "" {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if intPart == "0" && fracPart == "" && len(parts) == 2 {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// Shekels renders the amount as the reply vocabulary expects it: a shekel
// sign followed by the value with exactly two decimals, e.g. "₪12.50".
func (m Money) Shekels() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "₪-" + s
	}
	return "₪" + s
}
