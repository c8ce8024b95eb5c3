package ledger_test

import (
	"errors"
	"testing"

	"github.com/xraph/mintgate/ledger"
	"github.com/xraph/mintgate/types"
)

var (
	alice = types.HexAccount("0x0000000000000000000000000000000000000a11")
	bob   = types.HexAccount("0x0000000000000000000000000000000000000b0b")
)

func TestMint(t *testing.T) {
	l := ledger.New(61)

	if err := l.Mint(53, alice); err != nil {
		t.Fatal(err)
	}

	owner, err := l.OwnerOf(53)
	if err != nil {
		t.Fatal(err)
	}
	if owner != alice {
		t.Errorf("owner: got %s, want %s", owner, alice)
	}
	if l.TotalSupply() != 1 {
		t.Errorf("supply: got %d, want 1", l.TotalSupply())
	}
	if !l.Minted(53) {
		t.Error("item 53 should be minted")
	}
}

func TestMintFailures(t *testing.T) {
	l := ledger.New(61)
	if err := l.Mint(53, alice); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		itemID  uint64
		owner   types.Account
		wantErr error
	}{
		{"out of range", 61, bob, types.ErrInvalidItemID},
		{"far out of range", 5000, bob, types.ErrInvalidItemID},
		{"null owner", 1, types.NullAccount, types.ErrInvalidAccount},
		{"double mint", 53, bob, types.ErrAlreadyMinted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.Mint(tt.itemID, tt.owner); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	// The failed double mint must not disturb the first minter.
	owner, err := l.OwnerOf(53)
	if err != nil || owner != alice {
		t.Errorf("owner after failed re-mint: got %s (%v), want %s", owner, err, alice)
	}
	if l.TotalSupply() != 1 {
		t.Errorf("supply after failures: got %d, want 1", l.TotalSupply())
	}
}

func TestOwned(t *testing.T) {
	l := ledger.New(61)

	owned := l.Owned(alice)
	if owned == nil || len(owned) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", owned)
	}

	for _, itemID := range []uint64{2, 53, 7} {
		if err := l.Mint(itemID, alice); err != nil {
			t.Fatal(err)
		}
	}

	owned = l.Owned(alice)
	want := []uint64{2, 53, 7}
	if len(owned) != len(want) {
		t.Fatalf("got %v, want %v", owned, want)
	}
	for i := range want {
		if owned[i] != want[i] {
			t.Errorf("insertion order broken: got %v, want %v", owned, want)
		}
	}

	// Mutating the returned slice must not affect the ledger.
	owned[0] = 999
	if l.Owned(alice)[0] != 2 {
		t.Error("Owned returned ledger-internal storage")
	}

	if !l.HoldsAny(alice) || l.HoldsAny(bob) {
		t.Error("HoldsAny mismatch")
	}
}

func TestSupplyQueries(t *testing.T) {
	l := ledger.New(3)

	if l.RemainingSupply() != 3 || l.IsSoldOut() {
		t.Error("fresh ledger should have full remaining supply")
	}

	for i := uint64(0); i < 3; i++ {
		if err := l.Mint(i, alice); err != nil {
			t.Fatal(err)
		}
	}

	if l.TotalSupply() != 3 || l.RemainingSupply() != 0 || !l.IsSoldOut() {
		t.Errorf("after full mint: supply=%d remaining=%d soldOut=%v",
			l.TotalSupply(), l.RemainingSupply(), l.IsSoldOut())
	}
}

func TestForceTransfer(t *testing.T) {
	l := ledger.New(61)
	if err := l.Mint(58, bob); err != nil {
		t.Fatal(err)
	}
	if err := l.Mint(15, bob); err != nil {
		t.Fatal(err)
	}

	if err := l.ForceTransfer(58, alice); err != nil {
		t.Fatal(err)
	}

	owner, err := l.OwnerOf(58)
	if err != nil || owner != alice {
		t.Errorf("owner: got %s (%v), want %s", owner, err, alice)
	}
	if got := l.Owned(alice); len(got) != 1 || got[0] != 58 {
		t.Errorf("alice owned: got %v, want [58]", got)
	}
	if got := l.Owned(bob); len(got) != 1 || got[0] != 15 {
		t.Errorf("bob owned: got %v, want [15]", got)
	}
	if l.TotalSupply() != 2 {
		t.Errorf("supply changed by transfer: %d", l.TotalSupply())
	}
}

func TestForceTransferFailures(t *testing.T) {
	l := ledger.New(61)
	if err := l.Mint(58, bob); err != nil {
		t.Fatal(err)
	}

	if err := l.ForceTransfer(1, alice); !errors.Is(err, types.ErrInvalidItemID) {
		t.Errorf("unminted: got %v, want ErrInvalidItemID", err)
	}
	if err := l.ForceTransfer(58, types.NullAccount); !errors.Is(err, types.ErrInvalidAccount) {
		t.Errorf("null recipient: got %v, want ErrInvalidAccount", err)
	}

	owner, _ := l.OwnerOf(58)
	if owner != bob {
		t.Error("failed transfer mutated ownership")
	}
}

func TestForceTransferSelf(t *testing.T) {
	l := ledger.New(61)
	if err := l.Mint(58, bob); err != nil {
		t.Fatal(err)
	}
	if err := l.ForceTransfer(58, bob); err != nil {
		t.Fatal(err)
	}
	if got := l.Owned(bob); len(got) != 1 || got[0] != 58 {
		t.Errorf("self transfer corrupted owner index: %v", got)
	}
}

func TestOwnerOfUnminted(t *testing.T) {
	l := ledger.New(61)
	if _, err := l.OwnerOf(0); !errors.Is(err, types.ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}
