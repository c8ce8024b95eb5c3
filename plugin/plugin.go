// Package plugin provides an extensible hook system for Mintgate.
// Plugins can hook into sale lifecycle events to extend functionality.
package plugin

import (
	"context"
	"time"

	"github.com/xraph/mintgate/types"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Purchase lifecycle hooks
// ──────────────────────────────────────────────────

// OnTokenPurchased is called after a successful purchase.
type OnTokenPurchased interface {
	Plugin
	OnTokenPurchased(ctx context.Context, buyer types.Account, itemID uint64, price, paid types.Amount) error
}

// OnPurchaseRejected is called when a purchase fails its gates or payment
// check. reason is one of the sale sentinel errors.
type OnPurchaseRejected interface {
	Plugin
	OnPurchaseRejected(ctx context.Context, buyer types.Account, itemID uint64, reason error) error
}

// OnTokenAirdropped is called after an administrator mints an item without
// payment.
type OnTokenAirdropped interface {
	Plugin
	OnTokenAirdropped(ctx context.Context, caller, to types.Account, itemID uint64) error
}

// OnForceTransfer is called after an administrator reassigns an item's
// ownership, bypassing normal transfer authorization.
type OnForceTransfer interface {
	Plugin
	OnForceTransfer(ctx context.Context, caller, from, to types.Account, itemID uint64) error
}

// ──────────────────────────────────────────────────
// Pricing hooks
// ──────────────────────────────────────────────────

// OnPriceUpdated is called when an administrator overwrites a schedule entry.
type OnPriceUpdated interface {
	Plugin
	OnPriceUpdated(ctx context.Context, caller types.Account, itemID uint64, price types.Amount) error
}

// OnMinPriceUpdated is called when the discount floor price changes.
type OnMinPriceUpdated interface {
	Plugin
	OnMinPriceUpdated(ctx context.Context, caller types.Account, price types.Amount) error
}

// OnDiscountWindowUpdated is called when the discount window is moved or
// resized.
type OnDiscountWindowUpdated interface {
	Plugin
	OnDiscountWindowUpdated(ctx context.Context, caller types.Account, start time.Time, duration time.Duration) error
}

// ──────────────────────────────────────────────────
// Access-control hooks
// ──────────────────────────────────────────────────

// OnWhitelistUpdated is called when the individual-account whitelist changes.
// removal distinguishes removes from adds for listeners.
type OnWhitelistUpdated interface {
	Plugin
	OnWhitelistUpdated(ctx context.Context, caller types.Account, accounts []types.Account, removal bool) error
}

// OnWhitelistContractsUpdated is called when the calling-contract whitelist
// changes.
type OnWhitelistContractsUpdated interface {
	Plugin
	OnWhitelistContractsUpdated(ctx context.Context, caller types.Account, accounts []types.Account, removal bool) error
}

// OnWhitelistFlipped is called when the whitelist gate is toggled.
type OnWhitelistFlipped interface {
	Plugin
	OnWhitelistFlipped(ctx context.Context, caller types.Account, enabled bool) error
}

// OnPausedFlipped is called when the sale pause flag is toggled.
type OnPausedFlipped interface {
	Plugin
	OnPausedFlipped(ctx context.Context, caller types.Account, paused bool) error
}

// ──────────────────────────────────────────────────
// Configuration and treasury hooks
// ──────────────────────────────────────────────────

// OnBaseURIUpdated is called when the metadata base URI changes.
type OnBaseURIUpdated interface {
	Plugin
	OnBaseURIUpdated(ctx context.Context, caller types.Account, uri string) error
}

// OnFundsWithdrawn is called after a successful treasury withdrawal.
// beneficiary is a placeholder for a future referral mechanism and is
// currently always the null account.
type OnFundsWithdrawn interface {
	Plugin
	OnFundsWithdrawn(ctx context.Context, caller types.Account, amount types.Amount, at time.Time, beneficiary types.Account) error
}
