// Package audithook bridges sale lifecycle events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not depend on a
// concrete audit system. Callers inject a RecorderFunc adapter that bridges
// to their backend at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/plugin"
	"github.com/xraph/mintgate/types"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin                      = (*Extension)(nil)
	_ plugin.OnTokenPurchased            = (*Extension)(nil)
	_ plugin.OnPurchaseRejected          = (*Extension)(nil)
	_ plugin.OnTokenAirdropped           = (*Extension)(nil)
	_ plugin.OnForceTransfer             = (*Extension)(nil)
	_ plugin.OnPriceUpdated              = (*Extension)(nil)
	_ plugin.OnMinPriceUpdated           = (*Extension)(nil)
	_ plugin.OnDiscountWindowUpdated     = (*Extension)(nil)
	_ plugin.OnWhitelistUpdated          = (*Extension)(nil)
	_ plugin.OnWhitelistContractsUpdated = (*Extension)(nil)
	_ plugin.OnWhitelistFlipped          = (*Extension)(nil)
	_ plugin.OnPausedFlipped             = (*Extension)(nil)
	_ plugin.OnBaseURIUpdated            = (*Extension)(nil)
	_ plugin.OnFundsWithdrawn            = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
type AuditEvent struct {
	ID         id.AuditEventID `json:"id"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	Category   string          `json:"category"`
	ResourceID string          `json:"resource_id,omitempty"`
	Actor      string          `json:"actor,omitempty"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
	Outcome    string          `json:"outcome"`
	Severity   string          `json:"severity"`
	Reason     string          `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges sale lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Purchase lifecycle hooks
// ──────────────────────────────────────────────────

// OnTokenPurchased implements plugin.OnTokenPurchased.
func (e *Extension) OnTokenPurchased(ctx context.Context, buyer types.Account, itemID uint64, price, paid types.Amount) error {
	return e.record(ctx, ActionTokenPurchased, SeverityInfo, OutcomeSuccess,
		ResourceToken, itemKey(itemID), CategorySale, buyer, nil,
		"price", price.String(),
		"paid", paid.String(),
	)
}

// OnPurchaseRejected implements plugin.OnPurchaseRejected.
func (e *Extension) OnPurchaseRejected(ctx context.Context, buyer types.Account, itemID uint64, reason error) error {
	return e.record(ctx, ActionPurchaseRejected, SeverityWarning, OutcomeFailure,
		ResourceToken, itemKey(itemID), CategorySale, buyer, reason)
}

// OnTokenAirdropped implements plugin.OnTokenAirdropped.
func (e *Extension) OnTokenAirdropped(ctx context.Context, caller, to types.Account, itemID uint64) error {
	return e.record(ctx, ActionTokenAirdropped, SeverityInfo, OutcomeSuccess,
		ResourceToken, itemKey(itemID), CategorySale, caller, nil,
		"to", to.Hex(),
	)
}

// OnForceTransfer implements plugin.OnForceTransfer.
func (e *Extension) OnForceTransfer(ctx context.Context, caller, from, to types.Account, itemID uint64) error {
	return e.record(ctx, ActionForceTransfer, SeverityWarning, OutcomeSuccess,
		ResourceToken, itemKey(itemID), CategorySale, caller, nil,
		"from", from.Hex(),
		"to", to.Hex(),
	)
}

// ──────────────────────────────────────────────────
// Pricing hooks
// ──────────────────────────────────────────────────

// OnPriceUpdated implements plugin.OnPriceUpdated.
func (e *Extension) OnPriceUpdated(ctx context.Context, caller types.Account, itemID uint64, price types.Amount) error {
	return e.record(ctx, ActionPriceUpdated, SeverityInfo, OutcomeSuccess,
		ResourcePrice, itemKey(itemID), CategoryPricing, caller, nil,
		"price", price.String(),
	)
}

// OnMinPriceUpdated implements plugin.OnMinPriceUpdated.
func (e *Extension) OnMinPriceUpdated(ctx context.Context, caller types.Account, price types.Amount) error {
	return e.record(ctx, ActionMinPriceUpdated, SeverityInfo, OutcomeSuccess,
		ResourcePrice, "", CategoryPricing, caller, nil,
		"min_price", price.String(),
	)
}

// OnDiscountWindowUpdated implements plugin.OnDiscountWindowUpdated.
func (e *Extension) OnDiscountWindowUpdated(ctx context.Context, caller types.Account, start time.Time, duration time.Duration) error {
	return e.record(ctx, ActionDiscountWindowUpdated, SeverityInfo, OutcomeSuccess,
		ResourcePrice, "", CategoryPricing, caller, nil,
		"start", start.UTC().Format(time.RFC3339),
		"duration", duration.String(),
	)
}

// ──────────────────────────────────────────────────
// Access-control hooks
// ──────────────────────────────────────────────────

// OnWhitelistUpdated implements plugin.OnWhitelistUpdated.
func (e *Extension) OnWhitelistUpdated(ctx context.Context, caller types.Account, accounts []types.Account, removal bool) error {
	action := ActionWhitelistAdded
	if removal {
		action = ActionWhitelistRemoved
	}
	return e.record(ctx, action, SeverityInfo, OutcomeSuccess,
		ResourceWhitelist, "", CategoryAccess, caller, nil,
		"accounts", hexAll(accounts),
	)
}

// OnWhitelistContractsUpdated implements plugin.OnWhitelistContractsUpdated.
func (e *Extension) OnWhitelistContractsUpdated(ctx context.Context, caller types.Account, accounts []types.Account, removal bool) error {
	action := ActionWhitelistContractAdded
	if removal {
		action = ActionWhitelistContractRemoved
	}
	return e.record(ctx, action, SeverityInfo, OutcomeSuccess,
		ResourceWhitelist, "", CategoryAccess, caller, nil,
		"accounts", hexAll(accounts),
	)
}

// OnWhitelistFlipped implements plugin.OnWhitelistFlipped.
func (e *Extension) OnWhitelistFlipped(ctx context.Context, caller types.Account, enabled bool) error {
	return e.record(ctx, ActionWhitelistFlipped, SeverityWarning, OutcomeSuccess,
		ResourceWhitelist, "", CategoryAccess, caller, nil,
		"enabled", enabled,
	)
}

// OnPausedFlipped implements plugin.OnPausedFlipped.
func (e *Extension) OnPausedFlipped(ctx context.Context, caller types.Account, paused bool) error {
	return e.record(ctx, ActionPausedFlipped, SeverityWarning, OutcomeSuccess,
		ResourceSale, "", CategorySale, caller, nil,
		"paused", paused,
	)
}

// ──────────────────────────────────────────────────
// Configuration and treasury hooks
// ──────────────────────────────────────────────────

// OnBaseURIUpdated implements plugin.OnBaseURIUpdated.
func (e *Extension) OnBaseURIUpdated(ctx context.Context, caller types.Account, uri string) error {
	return e.record(ctx, ActionBaseURIUpdated, SeverityInfo, OutcomeSuccess,
		ResourceMetadata, "", CategorySale, caller, nil,
		"base_uri", uri,
	)
}

// OnFundsWithdrawn implements plugin.OnFundsWithdrawn.
func (e *Extension) OnFundsWithdrawn(ctx context.Context, caller types.Account, amount types.Amount, at time.Time, beneficiary types.Account) error {
	return e.record(ctx, ActionFundsWithdrawn, SeverityCritical, OutcomeSuccess,
		ResourceTreasury, "", CategoryTreasury, caller, nil,
		"amount", amount.String(),
		"at", at.UTC().Format(time.RFC3339),
		"beneficiary", beneficiary.Hex(),
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

func itemKey(itemID uint64) string {
	return strconv.FormatUint(itemID, 10)
}

func hexAll(accounts []types.Account) []string {
	out := make([]string, len(accounts))
	for i, a := range accounts {
		out[i] = a.Hex()
	}
	return out
}

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	actor types.Account,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		ID:         id.NewAuditEventID(),
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Actor:      actor.Hex(),
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
