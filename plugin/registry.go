package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/mintgate/types"
)

// Registry manages all registered plugins and provides efficient dispatch.
// It uses type-cached discovery for O(1) dispatch performance.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger

	// Type-cached plugin lists for efficient dispatch
	onTokenPurchased            []OnTokenPurchased
	onPurchaseRejected          []OnPurchaseRejected
	onTokenAirdropped           []OnTokenAirdropped
	onForceTransfer             []OnForceTransfer
	onPriceUpdated              []OnPriceUpdated
	onMinPriceUpdated           []OnMinPriceUpdated
	onDiscountWindowUpdated     []OnDiscountWindowUpdated
	onWhitelistUpdated          []OnWhitelistUpdated
	onWhitelistContractsUpdated []OnWhitelistContractsUpdated
	onWhitelistFlipped          []OnWhitelistFlipped
	onPausedFlipped             []OnPausedFlipped
	onBaseURIUpdated            []OnBaseURIUpdated
	onFundsWithdrawn            []OnFundsWithdrawn
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a plugin to the registry and caches its interfaces.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin: duplicate registration: %s", p.Name())
		}
	}

	r.plugins = append(r.plugins, p)

	// Type-switch to cache interfaces
	if v, ok := p.(OnTokenPurchased); ok {
		r.onTokenPurchased = append(r.onTokenPurchased, v)
	}
	if v, ok := p.(OnPurchaseRejected); ok {
		r.onPurchaseRejected = append(r.onPurchaseRejected, v)
	}
	if v, ok := p.(OnTokenAirdropped); ok {
		r.onTokenAirdropped = append(r.onTokenAirdropped, v)
	}
	if v, ok := p.(OnForceTransfer); ok {
		r.onForceTransfer = append(r.onForceTransfer, v)
	}
	if v, ok := p.(OnPriceUpdated); ok {
		r.onPriceUpdated = append(r.onPriceUpdated, v)
	}
	if v, ok := p.(OnMinPriceUpdated); ok {
		r.onMinPriceUpdated = append(r.onMinPriceUpdated, v)
	}
	if v, ok := p.(OnDiscountWindowUpdated); ok {
		r.onDiscountWindowUpdated = append(r.onDiscountWindowUpdated, v)
	}
	if v, ok := p.(OnWhitelistUpdated); ok {
		r.onWhitelistUpdated = append(r.onWhitelistUpdated, v)
	}
	if v, ok := p.(OnWhitelistContractsUpdated); ok {
		r.onWhitelistContractsUpdated = append(r.onWhitelistContractsUpdated, v)
	}
	if v, ok := p.(OnWhitelistFlipped); ok {
		r.onWhitelistFlipped = append(r.onWhitelistFlipped, v)
	}
	if v, ok := p.(OnPausedFlipped); ok {
		r.onPausedFlipped = append(r.onPausedFlipped, v)
	}
	if v, ok := p.(OnBaseURIUpdated); ok {
		r.onBaseURIUpdated = append(r.onBaseURIUpdated, v)
	}
	if v, ok := p.(OnFundsWithdrawn); ok {
		r.onFundsWithdrawn = append(r.onFundsWithdrawn, v)
	}

	r.logger.Info("plugin registered", "name", p.Name())

	return nil
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// List returns all registered plugins.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, len(r.plugins))
	copy(result, r.plugins)
	return result
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// ──────────────────────────────────────────────────
// Event emission methods
// ──────────────────────────────────────────────────

// EmitTokenPurchased emits a purchase event.
func (r *Registry) EmitTokenPurchased(ctx context.Context, buyer types.Account, itemID uint64, price, paid types.Amount) {
	r.mu.RLock()
	plugins := r.onTokenPurchased
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnTokenPurchased(ctx, buyer, itemID, price, paid)
		}); err != nil {
			r.logger.Warn("plugin OnTokenPurchased failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitPurchaseRejected emits a rejected-purchase event.
func (r *Registry) EmitPurchaseRejected(ctx context.Context, buyer types.Account, itemID uint64, reason error) {
	r.mu.RLock()
	plugins := r.onPurchaseRejected
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPurchaseRejected(ctx, buyer, itemID, reason)
		}); err != nil {
			r.logger.Warn("plugin OnPurchaseRejected failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitTokenAirdropped emits an airdrop event.
func (r *Registry) EmitTokenAirdropped(ctx context.Context, caller, to types.Account, itemID uint64) {
	r.mu.RLock()
	plugins := r.onTokenAirdropped
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnTokenAirdropped(ctx, caller, to, itemID)
		}); err != nil {
			r.logger.Warn("plugin OnTokenAirdropped failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitForceTransfer emits a force-transfer event.
func (r *Registry) EmitForceTransfer(ctx context.Context, caller, from, to types.Account, itemID uint64) {
	r.mu.RLock()
	plugins := r.onForceTransfer
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnForceTransfer(ctx, caller, from, to, itemID)
		}); err != nil {
			r.logger.Warn("plugin OnForceTransfer failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitPriceUpdated emits a price update event.
func (r *Registry) EmitPriceUpdated(ctx context.Context, caller types.Account, itemID uint64, price types.Amount) {
	r.mu.RLock()
	plugins := r.onPriceUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPriceUpdated(ctx, caller, itemID, price)
		}); err != nil {
			r.logger.Warn("plugin OnPriceUpdated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitMinPriceUpdated emits a floor-price update event.
func (r *Registry) EmitMinPriceUpdated(ctx context.Context, caller types.Account, price types.Amount) {
	r.mu.RLock()
	plugins := r.onMinPriceUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnMinPriceUpdated(ctx, caller, price)
		}); err != nil {
			r.logger.Warn("plugin OnMinPriceUpdated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitDiscountWindowUpdated emits a discount window update event.
func (r *Registry) EmitDiscountWindowUpdated(ctx context.Context, caller types.Account, start time.Time, duration time.Duration) {
	r.mu.RLock()
	plugins := r.onDiscountWindowUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnDiscountWindowUpdated(ctx, caller, start, duration)
		}); err != nil {
			r.logger.Warn("plugin OnDiscountWindowUpdated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitWhitelistUpdated emits an account-whitelist change event.
func (r *Registry) EmitWhitelistUpdated(ctx context.Context, caller types.Account, accounts []types.Account, removal bool) {
	r.mu.RLock()
	plugins := r.onWhitelistUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnWhitelistUpdated(ctx, caller, accounts, removal)
		}); err != nil {
			r.logger.Warn("plugin OnWhitelistUpdated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitWhitelistContractsUpdated emits a contract-whitelist change event.
func (r *Registry) EmitWhitelistContractsUpdated(ctx context.Context, caller types.Account, accounts []types.Account, removal bool) {
	r.mu.RLock()
	plugins := r.onWhitelistContractsUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnWhitelistContractsUpdated(ctx, caller, accounts, removal)
		}); err != nil {
			r.logger.Warn("plugin OnWhitelistContractsUpdated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitWhitelistFlipped emits a whitelist gate toggle event.
func (r *Registry) EmitWhitelistFlipped(ctx context.Context, caller types.Account, enabled bool) {
	r.mu.RLock()
	plugins := r.onWhitelistFlipped
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnWhitelistFlipped(ctx, caller, enabled)
		}); err != nil {
			r.logger.Warn("plugin OnWhitelistFlipped failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitPausedFlipped emits a pause toggle event.
func (r *Registry) EmitPausedFlipped(ctx context.Context, caller types.Account, paused bool) {
	r.mu.RLock()
	plugins := r.onPausedFlipped
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnPausedFlipped(ctx, caller, paused)
		}); err != nil {
			r.logger.Warn("plugin OnPausedFlipped failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBaseURIUpdated emits a base URI update event.
func (r *Registry) EmitBaseURIUpdated(ctx context.Context, caller types.Account, uri string) {
	r.mu.RLock()
	plugins := r.onBaseURIUpdated
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBaseURIUpdated(ctx, caller, uri)
		}); err != nil {
			r.logger.Warn("plugin OnBaseURIUpdated failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitFundsWithdrawn emits a withdrawal event.
func (r *Registry) EmitFundsWithdrawn(ctx context.Context, caller types.Account, amount types.Amount, at time.Time, beneficiary types.Account) {
	r.mu.RLock()
	plugins := r.onFundsWithdrawn
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnFundsWithdrawn(ctx, caller, amount, at, beneficiary)
		}); err != nil {
			r.logger.Warn("plugin OnFundsWithdrawn failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// callWithTimeout calls a plugin function with a timeout.
// Plugins should never block the sale pipeline.
func (r *Registry) callWithTimeout(ctx context.Context, pluginName string, fn func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("plugin timeout: %s", pluginName)
	case <-ctx.Done():
		return ctx.Err()
	}
}
