package mintgate

import "github.com/xraph/mintgate/types"

// Re-export common types for convenience so users don't have to import types package.

// Amount is re-exported from types package.
type Amount = types.Amount

// Account is re-exported from types package.
type Account = types.Account

// Call is re-exported from types package.
type Call = types.Call

// Entity is re-exported from types package.
type Entity = types.Entity

// Re-export Amount constructors
var (
	NewAmount   = types.NewAmount
	ZeroAmount  = types.ZeroAmount
	ParseAmount = types.ParseAmount
	MustAmount  = types.MustAmount
	SumAmounts  = types.SumAmounts
)

// Re-export Account helpers
var (
	NullAccount   = types.NullAccount
	HexAccount    = types.HexAccount
	IsNullAccount = types.IsNullAccount
	DirectCall    = types.DirectCall
	RelayedCall   = types.RelayedCall
)

// Re-export Entity constructor
var NewEntity = types.NewEntity
