// Package ledger tracks mint state and ownership for a fixed-supply sale.
//
// The ledger keeps two mappings that must stay mutually consistent at all
// times: item → owner, and owner → ordered list of owned items (insertion
// order). The supply counter always equals the number of minted items, and no
// item can ever be minted twice. Mutations are all-or-nothing: a failed
// operation leaves no partial state behind.
package ledger

import "github.com/xraph/mintgate/types"

// Ledger is the minting and ownership index for one sale generation.
type Ledger struct {
	capacity uint64
	owners   map[uint64]types.Account
	owned    map[types.Account][]uint64
	supply   uint64
}

// New creates an empty Ledger for item identifiers in [0, capacity).
func New(capacity uint64) *Ledger {
	return &Ledger{
		capacity: capacity,
		owners:   make(map[uint64]types.Account),
		owned:    make(map[types.Account][]uint64),
	}
}

// Capacity returns the total supply cap.
func (l *Ledger) Capacity() uint64 { return l.capacity }

// TotalSupply returns the number of minted items.
func (l *Ledger) TotalSupply() uint64 { return l.supply }

// RemainingSupply returns how many items are still unminted. Callers should
// use this (or IsSoldOut) to detect exhaustion instead of probing mints until
// they fail.
func (l *Ledger) RemainingSupply() uint64 { return l.capacity - l.supply }

// IsSoldOut reports whether every item has been minted.
func (l *Ledger) IsSoldOut() bool { return l.supply == l.capacity }

// Minted reports whether an item has been minted. Out-of-range identifiers
// report false.
func (l *Ledger) Minted(itemID uint64) bool {
	_, ok := l.owners[itemID]
	return ok
}

// Mint assigns an unminted item to owner. It fails with ErrInvalidItemID for
// out-of-range identifiers, ErrInvalidAccount for the null owner, and
// ErrAlreadyMinted if the item was minted before.
func (l *Ledger) Mint(itemID uint64, owner types.Account) error {
	if itemID >= l.capacity {
		return types.ErrInvalidItemID
	}
	if types.IsNullAccount(owner) {
		return types.ErrInvalidAccount
	}
	if _, minted := l.owners[itemID]; minted {
		return types.ErrAlreadyMinted
	}

	l.owners[itemID] = owner
	l.owned[owner] = append(l.owned[owner], itemID)
	l.supply++
	return nil
}

// OwnerOf returns the owner of a minted item, or ErrItemNotFound for
// unminted or out-of-range identifiers.
func (l *Ledger) OwnerOf(itemID uint64) (types.Account, error) {
	owner, ok := l.owners[itemID]
	if !ok {
		return types.NullAccount, types.ErrItemNotFound
	}
	return owner, nil
}

// Owned returns the item identifiers owned by account in insertion order.
// An account with no items gets an empty, non-nil slice. The returned slice
// is a copy.
func (l *Ledger) Owned(account types.Account) []uint64 {
	items := l.owned[account]
	out := make([]uint64, len(items))
	copy(out, items)
	return out
}

// HoldsAny reports whether account owns at least one minted item.
func (l *Ledger) HoldsAny(account types.Account) bool {
	return len(l.owned[account]) > 0
}

// ForceTransfer reassigns a minted item to a new owner, bypassing any
// transfer-authorization checks. Both mappings are updated atomically.
// It fails with ErrInvalidItemID if the item is unminted and
// ErrInvalidAccount if the recipient is the null account.
func (l *Ledger) ForceTransfer(itemID uint64, to types.Account) error {
	from, minted := l.owners[itemID]
	if !minted {
		return types.ErrInvalidItemID
	}
	if types.IsNullAccount(to) {
		return types.ErrInvalidAccount
	}
	if from == to {
		return nil
	}

	l.owners[itemID] = to
	l.owned[from] = removeItem(l.owned[from], itemID)
	if len(l.owned[from]) == 0 {
		delete(l.owned, from)
	}
	l.owned[to] = append(l.owned[to], itemID)
	return nil
}

func removeItem(items []uint64, itemID uint64) []uint64 {
	for i, v := range items {
		if v == itemID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
