package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Balances are signed 128-bit integers.
var (
	MaxAmount = decimal.RequireFromString("170141183460469231731687303715884105727")
	MinAmount = decimal.RequireFromString("-170141183460469231731687303715884105728")
)

var ErrAmountOverflow = errors.New("amount exceeds 128-bit range")

// IsPositiveAmount reports whether d is a strictly positive integer that fits in 128 bits.
func IsPositiveAmount(d decimal.Decimal) bool {
	return d.IsInteger() && d.Sign() > 0 && d.LessThanOrEqual(MaxAmount)
}

// CheckedAdd returns a+b, failing if the sum leaves the 128-bit range.
func CheckedAdd(a, b decimal.Decimal) (decimal.Decimal, error) {
	sum := a.Add(b)
	if sum.GreaterThan(MaxAmount) || sum.LessThan(MinAmount) {
		return decimal.Zero, ErrAmountOverflow
	}
	return sum, nil
}
