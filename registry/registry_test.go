package registry_test

import (
	"errors"
	"testing"

	"github.com/xraph/mintgate/registry"
	"github.com/xraph/mintgate/types"
)

var (
	alice = types.HexAccount("0x0000000000000000000000000000000000000a11")
	bob   = types.HexAccount("0x0000000000000000000000000000000000000b0b")
	relay = types.HexAccount("0x00000000000000000000000000000000000c0de")
)

func TestEmptyInputRejected(t *testing.T) {
	r := registry.New()

	tests := []struct {
		name string
		op   func() error
	}{
		{"AddAccounts", func() error { return r.AddAccounts(nil) }},
		{"RemoveAccounts", func() error { return r.RemoveAccounts([]types.Account{}) }},
		{"AddContracts", func() error { return r.AddContracts(nil) }},
		{"RemoveContracts", func() error { return r.RemoveContracts(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, types.ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
		})
	}
}

func TestAccountMembership(t *testing.T) {
	r := registry.New()

	if err := r.AddAccounts([]types.Account{alice, bob}); err != nil {
		t.Fatal(err)
	}
	if !r.HasAccount(alice) || !r.HasAccount(bob) {
		t.Error("expected both accounts whitelisted")
	}

	// Idempotent re-add.
	if err := r.AddAccounts([]types.Account{alice}); err != nil {
		t.Fatal(err)
	}

	if err := r.RemoveAccounts([]types.Account{alice}); err != nil {
		t.Fatal(err)
	}
	if r.HasAccount(alice) {
		t.Error("alice should have been removed")
	}
	if !r.HasAccount(bob) {
		t.Error("bob should still be whitelisted")
	}

	// Removing a non-member is a no-op, not an error.
	if err := r.RemoveAccounts([]types.Account{alice}); err != nil {
		t.Fatal(err)
	}
}

func TestIsAuthorized(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *registry.Registry)
		call  types.Call
		want  bool
	}{
		{
			"gate enabled, unknown sender",
			func(_ *registry.Registry) {},
			types.DirectCall(alice),
			false,
		},
		{
			"whitelisted sender",
			func(r *registry.Registry) { _ = r.AddAccounts([]types.Account{alice}) },
			types.DirectCall(alice),
			true,
		},
		{
			"whitelisted relaying contract",
			func(r *registry.Registry) { _ = r.AddContracts([]types.Account{relay}) },
			types.RelayedCall(bob, relay),
			true,
		},
		{
			"unknown relaying contract",
			func(_ *registry.Registry) {},
			types.RelayedCall(bob, relay),
			false,
		},
		{
			"contract entry does not admit direct senders",
			func(r *registry.Registry) { _ = r.AddContracts([]types.Account{alice}) },
			types.DirectCall(alice),
			false,
		},
		{
			"gate disabled admits everyone",
			func(r *registry.Registry) { r.ToggleEnabled() },
			types.DirectCall(bob),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.New()
			tt.setup(r)
			if got := r.IsAuthorized(tt.call.Sender, tt.call.Relayer); got != tt.want {
				t.Errorf("IsAuthorized: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleEnabled(t *testing.T) {
	r := registry.New()
	if !r.Enabled() {
		t.Fatal("gate should start enabled")
	}
	if got := r.ToggleEnabled(); got {
		t.Error("first toggle should disable")
	}
	if got := r.ToggleEnabled(); !got {
		t.Error("second toggle should re-enable")
	}
}
