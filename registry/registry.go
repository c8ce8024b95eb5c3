// Package registry implements the purchase-time access-control gate.
//
// It keeps two independent sets: whitelisted individual accounts and
// whitelisted calling contracts, plus an enable/disable flag for the whole
// gate. The gate is consulted only for purchases — administrative operations
// are authorized separately by the engine.
package registry

import "github.com/xraph/mintgate/types"

// Registry holds the whitelist state. The gate starts enabled.
type Registry struct {
	accounts  map[types.Account]struct{}
	contracts map[types.Account]struct{}
	enabled   bool
}

// New creates a Registry with empty sets and the gate enabled.
func New() *Registry {
	return &Registry{
		accounts:  make(map[types.Account]struct{}),
		contracts: make(map[types.Account]struct{}),
		enabled:   true,
	}
}

// AddAccounts adds each account to the individual whitelist. Re-adding an
// existing member is a no-op. An empty list is rejected.
func (r *Registry) AddAccounts(accounts []types.Account) error {
	return mutate(r.accounts, accounts, true)
}

// RemoveAccounts removes each account from the individual whitelist.
// Removing a non-member is a no-op. An empty list is rejected.
func (r *Registry) RemoveAccounts(accounts []types.Account) error {
	return mutate(r.accounts, accounts, false)
}

// AddContracts adds each account to the calling-contract whitelist.
func (r *Registry) AddContracts(accounts []types.Account) error {
	return mutate(r.contracts, accounts, true)
}

// RemoveContracts removes each account from the calling-contract whitelist.
func (r *Registry) RemoveContracts(accounts []types.Account) error {
	return mutate(r.contracts, accounts, false)
}

func mutate(set map[types.Account]struct{}, accounts []types.Account, add bool) error {
	if len(accounts) == 0 {
		return types.ErrEmptyInput
	}
	for _, a := range accounts {
		if add {
			set[a] = struct{}{}
		} else {
			delete(set, a)
		}
	}
	return nil
}

// ToggleEnabled flips the gate flag and returns the new value.
func (r *Registry) ToggleEnabled() bool {
	r.enabled = !r.enabled
	return r.enabled
}

// Enabled reports whether the gate is active.
func (r *Registry) Enabled() bool { return r.enabled }

// HasAccount reports membership in the individual whitelist.
func (r *Registry) HasAccount(a types.Account) bool {
	_, ok := r.accounts[a]
	return ok
}

// HasContract reports membership in the calling-contract whitelist.
func (r *Registry) HasContract(a types.Account) bool {
	_, ok := r.contracts[a]
	return ok
}

// IsAuthorized reports whether a purchase by sender, relayed through
// directCaller (the null account for direct calls), passes the gate.
// It passes when the gate is disabled, when the sender is whitelisted, or
// when the relaying contract is whitelisted.
func (r *Registry) IsAuthorized(sender, directCaller types.Account) bool {
	if !r.enabled {
		return true
	}
	if r.HasAccount(sender) {
		return true
	}
	if !types.IsNullAccount(directCaller) && r.HasContract(directCaller) {
		return true
	}
	return false
}
