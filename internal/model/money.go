// Package model defines domain types for pocketguard budgets, expenses and alerts.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in the smallest currency unit the host uses.
type Money int64

var maxMoney = decimal.NewFromInt(math.MaxInt64)

// ParseAmount parses user input into a positive whole Money value.
// Empty, non-numeric, fractional, non-positive and out-of-range input all fail with ErrInvalidAmount.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not a whole amount", ErrInvalidAmount, s)
	}
	if !d.IsPositive() || d.GreaterThan(maxMoney) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money(d.IntPart()), nil
}

// Format renders the amount with a currency prefix, e.g. "₹1250".
func (m Money) Format(symbol string) string {
	if m < 0 {
		return "-" + symbol + strconv.FormatInt(int64(-m), 10)
	}
	return symbol + strconv.FormatInt(int64(m), 10)
}
