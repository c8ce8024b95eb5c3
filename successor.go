package mintgate

import (
	"context"
	"time"

	"github.com/xraph/mintgate/discount"
	"github.com/xraph/mintgate/receipt"
	"github.com/xraph/mintgate/types"
)

// SuccessorSale is the second-generation sale engine. It reuses the whole
// first-generation machinery but quotes buyer-aware prices through a discount
// policy and lets holders of the previous generation buy without a whitelist
// entry.
type SuccessorSale struct {
	*Sale

	policy  *discount.Policy
	genesis discount.HoldingsReader
}

// NewSuccessor creates a second-generation sale administered by admin. The
// genesis handle is a read-only view of first-generation holdings; start is
// the opening of the holder discount window.
func NewSuccessor(admin types.Account, prices []types.Amount, genesis discount.HoldingsReader, start time.Time, opts ...Option) (*SuccessorSale, error) {
	base, err := New(admin, prices, opts...)
	if err != nil {
		return nil, err
	}

	g := &SuccessorSale{
		Sale:    base,
		policy:  discount.New(genesis, start),
		genesis: genesis,
	}
	// A previous-generation holder passes the purchase gate even when the
	// whitelist is enforced and does not list them.
	base.authorized = func(call types.Call) bool {
		return base.registry.IsAuthorized(call.Sender, call.Relayer) ||
			len(g.genesis.Owned(call.Sender)) > 0
	}
	base.quote = func(itemID uint64, buyer types.Account) (types.Amount, error) {
		p, err := base.schedule.PriceOf(itemID)
		if err != nil {
			return types.ZeroAmount(), err
		}
		return g.policy.EffectivePrice(p, buyer, base.now()), nil
	}

	return g, nil
}

// TokenPriceFor returns the price buyer would pay for itemID right now,
// applying the holder discount when it is in effect.
func (g *SuccessorSale) TokenPriceFor(itemID uint64, buyer types.Account) (types.Amount, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	base, err := g.schedule.PriceOf(itemID)
	if err != nil {
		return types.ZeroAmount(), err
	}
	return g.policy.EffectivePrice(base, buyer, g.now()), nil
}

// MinPrice returns the discount floor.
func (g *SuccessorSale) MinPrice() types.Amount {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.policy.MinPrice()
}

// SetMinPrice sets the discount floor. Admin only.
func (g *SuccessorSale) SetMinPrice(ctx context.Context, caller types.Account, price types.Amount) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(caller); err != nil {
		return err
	}
	if err := g.policy.SetMinPrice(price); err != nil {
		return err
	}
	g.hooks.EmitMinPriceUpdated(ctx, caller, price)
	return nil
}

// DiscountWindow returns the holder discount window.
func (g *SuccessorSale) DiscountWindow() (time.Time, time.Duration) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.policy.Window()
}

// SetDiscountWindow replaces the holder discount window. Admin only, and only
// before the first item is sold.
func (g *SuccessorSale) SetDiscountWindow(ctx context.Context, caller types.Account, start time.Time, duration time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(caller); err != nil {
		return err
	}
	if g.ledger.TotalSupply() > 0 {
		return types.ErrSaleAlreadyStarted
	}
	g.policy.SetWindow(start, duration)
	g.hooks.EmitDiscountWindowUpdated(ctx, caller, start, duration)
	return nil
}

// SetWindowOffset moves the window opening while keeping its duration. Admin
// only, and only before the first item is sold.
func (g *SuccessorSale) SetWindowOffset(ctx context.Context, caller types.Account, start time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(caller); err != nil {
		return err
	}
	if g.ledger.TotalSupply() > 0 {
		return types.ErrSaleAlreadyStarted
	}
	g.policy.SetWindowOffset(start)
	_, duration := g.policy.Window()
	g.hooks.EmitDiscountWindowUpdated(ctx, caller, start, duration)
	return nil
}

// ForceTransfer reassigns a minted item to another account. Admin only.
func (g *SuccessorSale) ForceTransfer(ctx context.Context, caller types.Account, itemID uint64, to types.Account) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.authorize(caller); err != nil {
		return err
	}
	if !g.ledger.Minted(itemID) {
		return types.ErrInvalidItemID
	}
	from, err := g.ledger.OwnerOf(itemID)
	if err != nil {
		return err
	}
	if err := g.ledger.ForceTransfer(itemID, to); err != nil {
		return err
	}

	g.record(ctx, &receipt.Receipt{
		Kind:    receipt.KindForceTransfer,
		ItemID:  &itemID,
		Account: to,
		From:    from,
	})
	g.hooks.EmitForceTransfer(ctx, caller, from, to, itemID)
	g.logger.Info("item force transferred",
		"sale_id", g.saleID,
		"item_id", itemID,
		"from", from.Hex(),
		"to", to.Hex(),
	)
	return nil
}
