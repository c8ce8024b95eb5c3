package mongo

import (
	"fmt"
	"time"

	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/receipt"
	"github.com/xraph/mintgate/types"
)

type receiptModel struct {
	ID        string    `bson:"_id"`
	SaleID    string    `bson:"sale_id"`
	Kind      string    `bson:"kind"`
	ItemID    *uint64   `bson:"item_id,omitempty"`
	Account   string    `bson:"account"`
	From      string    `bson:"from_account,omitempty"`
	Amount    string    `bson:"amount"`
	Price     string    `bson:"price"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toReceiptModel(r *receipt.Receipt) *receiptModel {
	return &receiptModel{
		ID:        r.ID.String(),
		SaleID:    r.SaleID.String(),
		Kind:      string(r.Kind),
		ItemID:    r.ItemID,
		Account:   r.Account.Hex(),
		From:      r.From.Hex(),
		Amount:    r.Amount.String(),
		Price:     r.Price.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromReceiptModel(m *receiptModel) (*receipt.Receipt, error) {
	rid, err := id.ParseReceiptID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("parse receipt id %q: %w", m.ID, err)
	}
	sid, err := id.ParseSaleID(m.SaleID)
	if err != nil {
		return nil, fmt.Errorf("parse sale id %q: %w", m.SaleID, err)
	}
	amount, err := types.ParseAmount(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", m.Amount, err)
	}
	price, err := types.ParseAmount(m.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", m.Price, err)
	}

	r := &receipt.Receipt{
		ID:      rid,
		SaleID:  sid,
		Kind:    receipt.Kind(m.Kind),
		ItemID:  m.ItemID,
		Account: types.HexAccount(m.Account),
		From:    types.HexAccount(m.From),
		Amount:  amount,
		Price:   price,
	}
	r.CreatedAt = m.CreatedAt
	r.UpdatedAt = m.UpdatedAt
	return r, nil
}
