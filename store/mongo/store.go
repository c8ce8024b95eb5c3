// Package mongo provides a MongoDB-backed journal store.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/xraph/mintgate"
	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/receipt"
	"github.com/xraph/mintgate/store"
)

const colReceipts = "mintgate_receipts"

// compile-time interface check
var _ store.Store = (*Store)(nil)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB at uri and uses the named database.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

// Migrate creates the receipt collection indexes.
func (s *Store) Migrate(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sale_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "sale_id", Value: 1}, {Key: "kind", Value: 1}}},
	}
	if _, err := s.db.Collection(colReceipts).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("migrate %s indexes: %w", colReceipts, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *Store) SaveReceipt(ctx context.Context, r *receipt.Receipt) error {
	_, err := s.db.Collection(colReceipts).InsertOne(ctx, toReceiptModel(r))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return mintgate.ErrAlreadyExists
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

func (s *Store) GetReceipt(ctx context.Context, receiptID id.ReceiptID) (*receipt.Receipt, error) {
	var m receiptModel
	err := s.db.Collection(colReceipts).
		FindOne(ctx, bson.M{"_id": receiptID.String()}).
		Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mintgate.ErrNotFound
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return fromReceiptModel(&m)
}

func (s *Store) ListReceipts(ctx context.Context, saleID id.SaleID, opts receipt.ListOpts) ([]*receipt.Receipt, error) {
	filter := bson.M{"sale_id": saleID.String()}
	if opts.Kind != "" {
		filter["kind"] = string(opts.Kind)
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}

	cur, err := s.db.Collection(colReceipts).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*receipt.Receipt, 0)
	for cur.Next(ctx) {
		var m receiptModel
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode receipt: %w", err)
		}
		r, err := fromReceiptModel(&m)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, cur.Err()
}
