package types

import "github.com/ethereum/go-ethereum/common"

// Account identifies a participant: a buyer, the administrator, or a
// whitelisted calling contract. It is a 20-byte chain address.
type Account = common.Address

// NullAccount is the zero account. It is never a valid owner or recipient,
// and appears as the placeholder beneficiary on withdrawal events.
var NullAccount Account

// HexAccount parses a hex string (with or without 0x prefix) into an Account.
func HexAccount(s string) Account { return common.HexToAddress(s) }

// IsNullAccount reports whether the account is the zero account.
func IsNullAccount(a Account) bool { return a == NullAccount }

// Call identifies the originator of a purchase. Sender is the account the
// operation is attributed to; Relayer is the immediate calling contract when
// the purchase is relayed through an intermediary, or the null account for a
// direct call.
type Call struct {
	Sender  Account
	Relayer Account
}

// DirectCall builds a Call with no relaying contract.
func DirectCall(sender Account) Call { return Call{Sender: sender} }

// RelayedCall builds a Call relayed through an intermediary contract.
func RelayedCall(sender, relayer Account) Call {
	return Call{Sender: sender, Relayer: relayer}
}
