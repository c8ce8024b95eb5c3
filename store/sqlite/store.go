// Package sqlite provides a SQLite-backed journal store using the pure Go
// modernc.org/sqlite driver, so no cgo is required.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/xraph/mintgate"
	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/receipt"
	"github.com/xraph/mintgate/store"
	"github.com/xraph/mintgate/types"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at path. Use ":memory:" for an
// ephemeral database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY under concurrent journal writes.
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing database handle. The caller keeps ownership of
// the handle's lifecycle except for Close.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveReceipt(ctx context.Context, r *receipt.Receipt) error {
	var itemID sql.NullInt64
	if r.ItemID != nil {
		itemID = sql.NullInt64{Int64: int64(*r.ItemID), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mintgate_receipts
			(id, sale_id, kind, item_id, account, from_account, amount, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.SaleID.String(), string(r.Kind), itemID,
		r.Account.Hex(), r.From.Hex(), r.Amount.String(), r.Price.String(),
		r.CreatedAt.UTC().Format(time.RFC3339Nano), r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return mintgate.ErrAlreadyExists
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

func (s *Store) GetReceipt(ctx context.Context, receiptID id.ReceiptID) (*receipt.Receipt, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, sale_id, kind, item_id, account, from_account, amount, price, created_at, updated_at
		FROM mintgate_receipts WHERE id = ?`, receiptID.String())
	r, err := scanReceipt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mintgate.ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Store) ListReceipts(ctx context.Context, saleID id.SaleID, opts receipt.ListOpts) ([]*receipt.Receipt, error) {
	query := `
		SELECT id, sale_id, kind, item_id, account, from_account, amount, price, created_at, updated_at
		FROM mintgate_receipts WHERE sale_id = ?`
	args := []any{saleID.String()}
	if opts.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(opts.Kind))
	}
	query += ` ORDER BY created_at, id`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		if opts.Limit <= 0 {
			query += ` LIMIT -1`
		}
		query += ` OFFSET ?`
		args = append(args, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	result := make([]*receipt.Receipt, 0)
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row scanner) (*receipt.Receipt, error) {
	var (
		r        receipt.Receipt
		rid, sid string
		kind     string
		itemID   sql.NullInt64
		account  string
		from     string
		amount   string
		price    string
		created  string
		updated  string
	)
	if err := row.Scan(&rid, &sid, &kind, &itemID, &account, &from, &amount, &price, &created, &updated); err != nil {
		return nil, err
	}

	var err error
	if r.ID, err = id.ParseReceiptID(rid); err != nil {
		return nil, fmt.Errorf("parse receipt id %q: %w", rid, err)
	}
	if r.SaleID, err = id.ParseSaleID(sid); err != nil {
		return nil, fmt.Errorf("parse sale id %q: %w", sid, err)
	}
	r.Kind = receipt.Kind(kind)
	if itemID.Valid {
		v := uint64(itemID.Int64)
		r.ItemID = &v
	}
	r.Account = types.HexAccount(account)
	r.From = types.HexAccount(from)
	if r.Amount, err = types.ParseAmount(amount); err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if r.Price, err = types.ParseAmount(price); err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updated, err)
	}
	return &r, nil
}
