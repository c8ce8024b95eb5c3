// Package receipt defines the journal records a sale writes for every
// fulfilled operation: purchases, airdrops, withdrawals and force transfers.
package receipt

import (
	"github.com/xraph/mintgate/id"
	"github.com/xraph/mintgate/types"
)

// Kind distinguishes the operation a receipt records.
type Kind string

const (
	KindPurchase      Kind = "purchase"
	KindAirdrop       Kind = "airdrop"
	KindWithdrawal    Kind = "withdrawal"
	KindForceTransfer Kind = "force_transfer"
)

// Receipt is one journal entry. ItemID is nil for withdrawals; From is set
// only on force transfers; Price is the quoted price at purchase time while
// Amount is what actually moved (paid payment or withdrawn balance).
type Receipt struct {
	types.Entity
	ID      id.ReceiptID  `json:"id"`
	SaleID  id.SaleID     `json:"sale_id"`
	Kind    Kind          `json:"kind"`
	ItemID  *uint64       `json:"item_id,omitempty"`
	Account types.Account `json:"account"`
	From    types.Account `json:"from,omitempty"`
	Amount  types.Amount  `json:"amount"`
	Price   types.Amount  `json:"price"`
}

// ListOpts filters receipt listings.
type ListOpts struct {
	Kind   Kind
	Limit  int
	Offset int
}
