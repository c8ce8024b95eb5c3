// Package types provides common types used across Mintgate.
package types

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Amount represents a native-currency value in the smallest unit (wei-scale).
// All arithmetic is 256-bit integer-only — no floating point. Amounts are
// unsigned and never go below zero: Sub saturates at zero rather than
// wrapping.
type Amount struct {
	u uint256.Int
}

// NewAmount creates an Amount from a uint64 value.
func NewAmount(v uint64) Amount {
	var a Amount
	a.u.SetUint64(v)
	return a
}

// ZeroAmount is the zero value, provided for readability at call sites.
func ZeroAmount() Amount { return Amount{} }

// ParseAmount parses a base-10 string into an Amount.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("types: parse amount: empty string")
	}
	u, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("types: parse amount %q: %w", s, err)
	}
	return Amount{u: *u}, nil
}

// MustAmount is like ParseAmount but panics on error. Use for hardcoded values.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Arithmetic operations. Receivers are values; results are new Amounts.

// Add returns a + other. Panics on 256-bit overflow (programming error at
// treasury scale).
func (a Amount) Add(other Amount) Amount {
	var r Amount
	if _, overflow := r.u.AddOverflow(&a.u, &other.u); overflow {
		panic("types: amount overflow in Add")
	}
	return r
}

// Sub returns a - other, saturating at zero when other exceeds a.
func (a Amount) Sub(other Amount) Amount {
	if a.u.Lt(&other.u) {
		return Amount{}
	}
	var r Amount
	r.u.Sub(&a.u, &other.u)
	return r
}

// Mul returns a * v. Panics on 256-bit overflow.
func (a Amount) Mul(v uint64) Amount {
	var r, m Amount
	m.u.SetUint64(v)
	if _, overflow := r.u.MulOverflow(&a.u, &m.u); overflow {
		panic("types: amount overflow in Mul")
	}
	return r
}

// Div returns a / v using integer division. Panics if v is zero.
func (a Amount) Div(v uint64) Amount {
	if v == 0 {
		panic("types: amount division by zero")
	}
	var r, d Amount
	d.u.SetUint64(v)
	r.u.Div(&a.u, &d.u)
	return r
}

// ScaleDown returns a * num / den, rounding down. This is the fixed-point
// form used for fractional pricing (e.g. a 10% reduction is ScaleDown(90, 100)).
func (a Amount) ScaleDown(num, den uint64) Amount {
	return a.Mul(num).Div(den)
}

// Comparison methods

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.u.IsZero() }

// Equal reports whether both amounts are equal.
func (a Amount) Equal(other Amount) bool { return a.u.Eq(&other.u) }

// LessThan reports whether a < other.
func (a Amount) LessThan(other Amount) bool { return a.u.Lt(&other.u) }

// GreaterThan reports whether a > other.
func (a Amount) GreaterThan(other Amount) bool { return a.u.Gt(&other.u) }

// Cmp returns -1, 0 or 1 depending on whether a is less than, equal to or
// greater than other.
func (a Amount) Cmp(other Amount) int { return a.u.Cmp(&other.u) }

// Max returns the larger of the two amounts.
func (a Amount) Max(other Amount) Amount {
	if a.u.Lt(&other.u) {
		return other
	}
	return a
}

// Min returns the smaller of the two amounts.
func (a Amount) Min(other Amount) Amount {
	if a.u.Gt(&other.u) {
		return other
	}
	return a
}

// Uint64 returns the amount as a uint64. Panics if it does not fit (use only
// where the schedule is known to be small-valued, e.g. tests).
func (a Amount) Uint64() uint64 {
	if !a.u.IsUint64() {
		panic("types: amount does not fit in uint64")
	}
	return a.u.Uint64()
}

// Float64 returns the amount as a float64. Unlike Uint64 it never panics:
// values above 2^53 lose precision and values beyond the float64 range
// saturate to +Inf. Intended for metrics and other approximate consumers.
func (a Amount) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.u.ToBig()).Float64()
	return f
}

// String returns the base-10 representation.
func (a Amount) String() string { return a.u.Dec() }

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.u.Dec()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*a = Amount{}
		return nil
	}
	parsed, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// SumAmounts calculates the sum of multiple amounts.
func SumAmounts(values ...Amount) Amount {
	var total Amount
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
