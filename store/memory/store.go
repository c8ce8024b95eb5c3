// Package memory provides an in-memory journal store, suitable for tests and
// single-process deployments that do not need a durable journal.
package memory

import (
	"context"
	"sync"

	"github.com/xraph/mintgate"
	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/receipt"
	"github.com/xraph/mintgate/store"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

type Store struct {
	mu sync.RWMutex

	// Receipts in insertion order plus an index by ID
	receipts []*receipt.Receipt
	byID     map[string]*receipt.Receipt
}

func New() *Store {
	return &Store{
		receipts: make([]*receipt.Receipt, 0),
		byID:     make(map[string]*receipt.Receipt),
	}
}

func (s *Store) SaveReceipt(_ context.Context, r *receipt.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Receipts are immutable; a duplicate ID is a caller bug.
	if _, exists := s.byID[r.ID.String()]; exists {
		return mintgate.ErrAlreadyExists
	}
	s.receipts = append(s.receipts, r)
	s.byID[r.ID.String()] = r
	return nil
}

func (s *Store) GetReceipt(_ context.Context, receiptID id.ReceiptID) (*receipt.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.byID[receiptID.String()]; ok {
		return r, nil
	}
	return nil, mintgate.ErrNotFound
}

func (s *Store) ListReceipts(_ context.Context, saleID id.SaleID, opts receipt.ListOpts) ([]*receipt.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*receipt.Receipt, 0)
	for _, r := range s.receipts {
		if r.SaleID.String() != saleID.String() {
			continue
		}
		if opts.Kind != "" && r.Kind != opts.Kind {
			continue
		}
		result = append(result, r)
	}

	// Apply limit/offset
	start := opts.Offset
	if start > len(result) {
		start = len(result)
	}
	end := start + opts.Limit
	if opts.Limit == 0 || end > len(result) {
		end = len(result)
	}

	return result[start:end], nil
}

// Store management
func (s *Store) Migrate(_ context.Context) error {
	return nil // No migration needed for memory store
}

func (s *Store) Ping(_ context.Context) error {
	return nil // Always available
}

func (s *Store) Close() error {
	return nil // Nothing to close
}
