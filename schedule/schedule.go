// Package schedule holds the per-item base price table for a sale.
//
// The schedule length is fixed at construction and equals the total supply
// cap: item identifiers are valid exactly in [0, Len()). Entries are
// individually adjustable but must remain non-zero.
package schedule

import (
	"fmt"

	"github.com/xraph/mintgate/types"
)

// Schedule is an ordered table of base prices, one per item identifier.
type Schedule struct {
	prices []types.Amount
}

// New creates a Schedule from the given base prices. The slice is copied.
// Every entry must be non-zero and the schedule must not be empty.
func New(prices []types.Amount) (*Schedule, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("schedule: %w", types.ErrEmptyInput)
	}
	for i, p := range prices {
		if p.IsZero() {
			return nil, fmt.Errorf("schedule: entry %d: %w", i, types.ErrInvalidPrice)
		}
	}

	s := &Schedule{prices: make([]types.Amount, len(prices))}
	copy(s.prices, prices)
	return s, nil
}

// Len returns the schedule length, which is also the total supply cap.
func (s *Schedule) Len() int { return len(s.prices) }

// Contains reports whether itemID is a valid item identifier.
func (s *Schedule) Contains(itemID uint64) bool {
	return itemID < uint64(len(s.prices))
}

// PriceOf returns the base price of an item.
func (s *Schedule) PriceOf(itemID uint64) (types.Amount, error) {
	if !s.Contains(itemID) {
		return types.Amount{}, types.ErrInvalidItemID
	}
	return s.prices[itemID], nil
}

// SetPrice overwrites the base price of an item. The price must be non-zero.
func (s *Schedule) SetPrice(itemID uint64, price types.Amount) error {
	if !s.Contains(itemID) {
		return types.ErrInvalidItemID
	}
	if price.IsZero() {
		return types.ErrInvalidPrice
	}
	s.prices[itemID] = price
	return nil
}
