// Package observability provides a metrics extension for Mintgate that
// records sale lifecycle event counts.
package observability

import (
	"context"
	"time"

	"github.com/xraph/mintgate/plugin"
	"github.com/xraph/mintgate/types"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin                      = (*MetricsExtension)(nil)
	_ plugin.OnTokenPurchased            = (*MetricsExtension)(nil)
	_ plugin.OnPurchaseRejected          = (*MetricsExtension)(nil)
	_ plugin.OnTokenAirdropped           = (*MetricsExtension)(nil)
	_ plugin.OnForceTransfer             = (*MetricsExtension)(nil)
	_ plugin.OnPriceUpdated              = (*MetricsExtension)(nil)
	_ plugin.OnWhitelistUpdated          = (*MetricsExtension)(nil)
	_ plugin.OnWhitelistContractsUpdated = (*MetricsExtension)(nil)
	_ plugin.OnWhitelistFlipped          = (*MetricsExtension)(nil)
	_ plugin.OnPausedFlipped             = (*MetricsExtension)(nil)
	_ plugin.OnFundsWithdrawn            = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide sale lifecycle metrics.
// Register it as a sale hook to automatically track sale metrics.
type MetricsExtension struct {
	factory MetricFactory

	// Purchase metrics
	TokensPurchased   Counter
	PurchasesRejected Counter
	TokensAirdropped  Counter
	ForceTransfers    Counter
	PurchaseRevenue   Histogram

	// Admin metrics
	PriceUpdates     Counter
	WhitelistUpdates Counter
	WhitelistFlips   Counter
	PauseFlips       Counter
	Withdrawals      Counter
	WithdrawnAmounts Histogram
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Purchase metrics
		TokensPurchased:   factory.Counter("mintgate.token.purchased"),
		PurchasesRejected: factory.Counter("mintgate.token.purchase_rejected"),
		TokensAirdropped:  factory.Counter("mintgate.token.airdropped"),
		ForceTransfers:    factory.Counter("mintgate.token.force_transferred"),
		PurchaseRevenue:   factory.Histogram("mintgate.purchase.revenue"),

		// Admin metrics
		PriceUpdates:     factory.Counter("mintgate.price.updates"),
		WhitelistUpdates: factory.Counter("mintgate.whitelist.updates"),
		WhitelistFlips:   factory.Counter("mintgate.whitelist.flips"),
		PauseFlips:       factory.Counter("mintgate.sale.pause_flips"),
		Withdrawals:      factory.Counter("mintgate.treasury.withdrawals"),
		WithdrawnAmounts: factory.Histogram("mintgate.treasury.withdrawn"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "metrics" }

// OnTokenPurchased implements plugin.OnTokenPurchased.
func (m *MetricsExtension) OnTokenPurchased(_ context.Context, _ types.Account, _ uint64, _, paid types.Amount) error {
	m.TokensPurchased.Inc()
	m.PurchaseRevenue.Observe(paid.Float64())
	return nil
}

// OnPurchaseRejected implements plugin.OnPurchaseRejected.
func (m *MetricsExtension) OnPurchaseRejected(context.Context, types.Account, uint64, error) error {
	m.PurchasesRejected.Inc()
	return nil
}

// OnTokenAirdropped implements plugin.OnTokenAirdropped.
func (m *MetricsExtension) OnTokenAirdropped(context.Context, types.Account, types.Account, uint64) error {
	m.TokensAirdropped.Inc()
	return nil
}

// OnForceTransfer implements plugin.OnForceTransfer.
func (m *MetricsExtension) OnForceTransfer(_ context.Context, _, _, _ types.Account, _ uint64) error {
	m.ForceTransfers.Inc()
	return nil
}

// OnPriceUpdated implements plugin.OnPriceUpdated.
func (m *MetricsExtension) OnPriceUpdated(context.Context, types.Account, uint64, types.Amount) error {
	m.PriceUpdates.Inc()
	return nil
}

// OnWhitelistUpdated implements plugin.OnWhitelistUpdated.
func (m *MetricsExtension) OnWhitelistUpdated(_ context.Context, _ types.Account, accounts []types.Account, _ bool) error {
	m.WhitelistUpdates.Add(float64(len(accounts)))
	return nil
}

// OnWhitelistContractsUpdated implements plugin.OnWhitelistContractsUpdated.
func (m *MetricsExtension) OnWhitelistContractsUpdated(_ context.Context, _ types.Account, accounts []types.Account, _ bool) error {
	m.WhitelistUpdates.Add(float64(len(accounts)))
	return nil
}

// OnWhitelistFlipped implements plugin.OnWhitelistFlipped.
func (m *MetricsExtension) OnWhitelistFlipped(context.Context, types.Account, bool) error {
	m.WhitelistFlips.Inc()
	return nil
}

// OnPausedFlipped implements plugin.OnPausedFlipped.
func (m *MetricsExtension) OnPausedFlipped(context.Context, types.Account, bool) error {
	m.PauseFlips.Inc()
	return nil
}

// OnFundsWithdrawn implements plugin.OnFundsWithdrawn.
func (m *MetricsExtension) OnFundsWithdrawn(_ context.Context, _ types.Account, amount types.Amount, _ time.Time, _ types.Account) error {
	m.Withdrawals.Inc()
	m.WithdrawnAmounts.Observe(amount.Float64())
	return nil
}
