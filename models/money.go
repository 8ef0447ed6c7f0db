package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Cents holds a monetary amount as integer cents to avoid floating point
// rounding in budgets and expenses.
type Cents int64

var ErrInvalidAmount = errors.New("invalid amount")

// ParseCents converts a decimal string like "12.34" or "12,34" to cents.
// Amounts must be positive and carry at most two decimal places.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
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
	if len(fracPart) > 2 {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Pad "5" to "50" so one decimal place means tens of cents
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	fv, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	amount := iv*100 + fv
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return Cents(amount), nil
}

// String renders the amount as a canonical decimal, e.g. 1234 -> "12.34".
// This is the serialization used in audit change rows, so it must stay stable.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
