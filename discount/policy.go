// Package discount computes the time-boxed price reduction that a successor
// sale grants to holders of the genesis generation.
//
// The policy holds a read-only handle to the genesis ledger's query
// interface. It can never mutate genesis state.
package discount

import (
	"time"

	"github.com/xraph/mintgate/types"
)

// Discounted price = base * Numerator / Denominator, rounded down (90% of
// the base price, i.e. a fixed 10% reduction).
const (
	Numerator   = 90
	Denominator = 100
)

// DefaultWindowDuration applies when no explicit duration is configured.
const DefaultWindowDuration = 24 * time.Hour

// HoldingsReader is the read-only view of the genesis ledger that the policy
// consults. *ledger.Ledger satisfies it.
type HoldingsReader interface {
	// Owned returns the item identifiers owned by account.
	Owned(account types.Account) []uint64
}

// Policy is the discount configuration of one successor sale.
type Policy struct {
	genesis  HoldingsReader
	start    time.Time
	duration time.Duration
	minPrice types.Amount // zero = floor disabled
}

// New creates a Policy reading genesis holdings, with the discount window
// opening at start for DefaultWindowDuration.
func New(genesis HoldingsReader, start time.Time) *Policy {
	return &Policy{
		genesis:  genesis,
		start:    start,
		duration: DefaultWindowDuration,
	}
}

// Window returns the configured window start and duration.
func (p *Policy) Window() (time.Time, time.Duration) { return p.start, p.duration }

// SetWindow reconfigures both the window start and its duration.
func (p *Policy) SetWindow(start time.Time, duration time.Duration) {
	p.start = start
	p.duration = duration
}

// SetWindowOffset moves the window start, keeping the duration.
func (p *Policy) SetWindowOffset(start time.Time) {
	p.start = start
}

// MinPrice returns the configured floor price (zero when disabled).
func (p *Policy) MinPrice() types.Amount { return p.minPrice }

// SetMinPrice sets the floor that a discounted price is clamped up to.
// A zero price is rejected; the floor starts disabled.
func (p *Policy) SetMinPrice(price types.Amount) error {
	if price.IsZero() {
		return types.ErrInvalidPrice
	}
	p.minPrice = price
	return nil
}

// InWindow reports whether now falls within [start, start+duration).
func (p *Policy) InWindow(now time.Time) bool {
	return !now.Before(p.start) && now.Before(p.start.Add(p.duration))
}

// Eligible reports whether buyer qualifies for the discount at time now:
// the buyer must hold at least one genesis item and now must be inside the
// window.
func (p *Policy) Eligible(buyer types.Account, now time.Time) bool {
	return p.InWindow(now) && len(p.genesis.Owned(buyer)) > 0
}

// EffectivePrice computes the price a buyer pays given the base price.
// Eligible buyers pay 90% of base, rounded down, clamped to the floor price
// when one is configured. The result is never negative.
func (p *Policy) EffectivePrice(base types.Amount, buyer types.Account, now time.Time) types.Amount {
	if !p.Eligible(buyer, now) {
		return base
	}

	price := base.ScaleDown(Numerator, Denominator)
	if !p.minPrice.IsZero() {
		price = price.Max(p.minPrice)
	}
	return price
}
