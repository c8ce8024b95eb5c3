// Package store defines the persistence interface for the sale journal.
package store

import (
	"context"

	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/receipt"
)

// Store is the unified storage interface for the sale journal. The engine's
// authoritative state is in memory; the journal records every fulfilled
// operation for reporting and reconciliation.
type Store interface {
	// Receipt methods
	SaveReceipt(ctx context.Context, r *receipt.Receipt) error
	GetReceipt(ctx context.Context, receiptID id.ReceiptID) (*receipt.Receipt, error)
	ListReceipts(ctx context.Context, saleID id.SaleID, opts receipt.ListOpts) ([]*receipt.Receipt, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
