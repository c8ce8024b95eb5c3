// Package treasury accumulates sale proceeds and releases them to the
// administrator.
//
// The vault invariant: balance equals cumulative credits minus cumulative
// withdrawals. Withdraw zeroes the balance strictly before the external
// transfer is issued, so a reentrant callback during the transfer observes an
// empty vault and cannot drain the credited amount twice.
package treasury

import (
	"context"

	"github.com/xraph/mintgate/types"
)

// TransferFunc moves native currency out of the vault to a recipient. It is
// injected by the integrator; the default in the engine is a no-op that
// treats funds as settled externally.
type TransferFunc func(ctx context.Context, to types.Account, amount types.Amount) error

// Vault holds the accumulated native-currency balance of one sale instance.
type Vault struct {
	balance  types.Amount
	transfer TransferFunc
}

// New creates an empty Vault using the given transfer function. A nil
// transfer function is replaced by a no-op.
func New(transfer TransferFunc) *Vault {
	if transfer == nil {
		transfer = func(context.Context, types.Account, types.Amount) error { return nil }
	}
	return &Vault{transfer: transfer}
}

// Credit adds amount to the balance. Called only after a successful purchase.
func (v *Vault) Credit(amount types.Amount) {
	v.balance = v.balance.Add(amount)
}

// Balance returns the current balance.
func (v *Vault) Balance() types.Amount { return v.balance }

// Withdraw releases the entire balance to the recipient and returns the
// amount moved. It fails with ErrEmptyBalance when there is nothing to
// withdraw. The balance is zeroed before the transfer executes; if the
// transfer itself fails the balance is restored and the error returned.
func (v *Vault) Withdraw(ctx context.Context, to types.Account) (types.Amount, error) {
	if v.balance.IsZero() {
		return types.Amount{}, types.ErrEmptyBalance
	}

	amount := v.balance
	v.balance = types.Amount{}

	if err := v.transfer(ctx, to, amount); err != nil {
		v.balance = v.balance.Add(amount)
		return types.Amount{}, err
	}
	return amount, nil
}
