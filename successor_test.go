package mintgate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/mintgate"
	"github.com/xraph/mintgate/types"
)

var holder = types.HexAccount("0x0000000000000000000000000000000000000D01")

// successorFixture builds a second generation whose genesis holds item 58 for
// holder, with the discount window open at the frozen clock.
func successorFixture(t *testing.T) *mintgate.SuccessorSale {
	t.Helper()
	ctx := context.Background()

	genesis := openSale(t, flatPrices(61, 100))
	if err := genesis.AirdropToken(ctx, admin, 58, holder); err != nil {
		t.Fatal(err)
	}

	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(time.Hour)
	g, err := mintgate.NewSuccessor(admin, flatPrices(61, 170), genesis, start,
		mintgate.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.FlipWhitelistedStatus(ctx, admin); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestTokenPriceFor(t *testing.T) {
	g := successorFixture(t)

	got, err := g.TokenPriceFor(58, holder)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(types.NewAmount(153)) {
		t.Errorf("holder price: got %s, want 153", got)
	}

	got, err = g.TokenPriceFor(58, buyer)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(types.NewAmount(170)) {
		t.Errorf("non-holder price: got %s, want 170", got)
	}

	if _, err := g.TokenPriceFor(61, holder); !errors.Is(err, mintgate.ErrInvalidItemID) {
		t.Errorf("got %v, want ErrInvalidItemID", err)
	}
}

func TestSuccessorBuyAtDiscount(t *testing.T) {
	ctx := context.Background()
	g := successorFixture(t)

	// One unit under the discounted quote is rejected.
	err := g.BuyToken(ctx, mintgate.DirectCall(holder), 58, types.NewAmount(152))
	if !errors.Is(err, mintgate.ErrInsufficientPayment) {
		t.Errorf("got %v, want ErrInsufficientPayment", err)
	}

	if err := g.BuyToken(ctx, mintgate.DirectCall(holder), 58, types.NewAmount(153)); err != nil {
		t.Fatal(err)
	}
	owner, err := g.OwnerOf(58)
	if err != nil {
		t.Fatal(err)
	}
	if owner != holder {
		t.Errorf("owner: got %s, want holder", owner.Hex())
	}
	if got := g.Balance(); !got.Equal(types.NewAmount(153)) {
		t.Errorf("balance: got %s, want 153", got)
	}

	// A non-holder pays full price for another item.
	if err := g.BuyToken(ctx, mintgate.DirectCall(buyer), 10, types.NewAmount(153)); !errors.Is(err, mintgate.ErrInsufficientPayment) {
		t.Errorf("got %v, want ErrInsufficientPayment", err)
	}
	if err := g.BuyToken(ctx, mintgate.DirectCall(buyer), 10, types.NewAmount(170)); err != nil {
		t.Fatal(err)
	}
}

func TestSuccessorGate(t *testing.T) {
	ctx := context.Background()

	genesis := openSale(t, flatPrices(61, 100))
	if err := genesis.AirdropToken(ctx, admin, 58, holder); err != nil {
		t.Fatal(err)
	}

	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	g, err := mintgate.NewSuccessor(admin, flatPrices(61, 170), genesis, start,
		mintgate.WithClock(func() time.Time { return start.Add(time.Hour) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Whitelist stays enabled: a previous-generation holder passes anyway.
	if err := g.BuyToken(ctx, mintgate.DirectCall(holder), 58, types.NewAmount(153)); err != nil {
		t.Fatal(err)
	}

	buyErr := g.BuyToken(ctx, mintgate.DirectCall(buyer), 10, types.NewAmount(170))
	if !errors.Is(buyErr, mintgate.ErrNotWhitelisted) {
		t.Errorf("got %v, want ErrNotWhitelisted", buyErr)
	}

	if err := g.AddWhitelistedUsers(ctx, admin, []types.Account{buyer}); err != nil {
		t.Fatal(err)
	}
	if err := g.BuyToken(ctx, mintgate.DirectCall(buyer), 10, types.NewAmount(170)); err != nil {
		t.Fatal(err)
	}
}

func TestMinPriceFloor(t *testing.T) {
	ctx := context.Background()
	g := successorFixture(t)

	if err := g.SetMinPrice(ctx, admin, types.NewAmount(160)); err != nil {
		t.Fatal(err)
	}
	got, err := g.TokenPriceFor(58, holder)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(types.NewAmount(160)) {
		t.Errorf("floored price: got %s, want 160", got)
	}

	if err := g.SetMinPrice(ctx, admin, types.ZeroAmount()); !errors.Is(err, mintgate.ErrInvalidPrice) {
		t.Errorf("got %v, want ErrInvalidPrice", err)
	}
	if err := g.SetMinPrice(ctx, intruder, types.NewAmount(1)); !errors.Is(err, mintgate.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestDiscountWindowConfiguration(t *testing.T) {
	ctx := context.Background()
	g := successorFixture(t)

	newStart := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	if err := g.SetDiscountWindow(ctx, admin, newStart, time.Hour); err != nil {
		t.Fatal(err)
	}
	gotStart, gotDur := g.DiscountWindow()
	if !gotStart.Equal(newStart) || gotDur != time.Hour {
		t.Errorf("window: got (%v, %v)", gotStart, gotDur)
	}

	// The clock is now outside the moved window, so the holder quote is the
	// base price again.
	price, err := g.TokenPriceFor(58, holder)
	if err != nil {
		t.Fatal(err)
	}
	if !price.Equal(types.NewAmount(170)) {
		t.Errorf("price outside window: got %s, want 170", price)
	}

	if err := g.SetWindowOffset(ctx, admin, newStart.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	_, gotDur = g.DiscountWindow()
	if gotDur != time.Hour {
		t.Errorf("offset move must keep duration, got %v", gotDur)
	}

	if err := g.SetDiscountWindow(ctx, intruder, newStart, time.Hour); !errors.Is(err, mintgate.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestDiscountWindowLockedAfterFirstSale(t *testing.T) {
	ctx := context.Background()
	g := successorFixture(t)

	if err := g.BuyToken(ctx, mintgate.DirectCall(buyer), 10, types.NewAmount(170)); err != nil {
		t.Fatal(err)
	}

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	if err := g.SetDiscountWindow(ctx, admin, start, time.Hour); !errors.Is(err, mintgate.ErrSaleAlreadyStarted) {
		t.Errorf("SetDiscountWindow: got %v, want ErrSaleAlreadyStarted", err)
	}
	if err := g.SetWindowOffset(ctx, admin, start); !errors.Is(err, mintgate.ErrSaleAlreadyStarted) {
		t.Errorf("SetWindowOffset: got %v, want ErrSaleAlreadyStarted", err)
	}
}

func TestForceTransfer(t *testing.T) {
	ctx := context.Background()
	g := successorFixture(t)

	if err := g.BuyToken(ctx, mintgate.DirectCall(buyer), 10, types.NewAmount(170)); err != nil {
		t.Fatal(err)
	}

	if err := g.ForceTransfer(ctx, admin, 10, other); err != nil {
		t.Fatal(err)
	}
	owner, err := g.OwnerOf(10)
	if err != nil {
		t.Fatal(err)
	}
	if owner != other {
		t.Errorf("owner: got %s, want %s", owner.Hex(), other.Hex())
	}
	if got := g.Owned(buyer); len(got) != 0 {
		t.Errorf("previous owner still holds %v", got)
	}

	if err := g.ForceTransfer(ctx, intruder, 10, intruder); !errors.Is(err, mintgate.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
	if err := g.ForceTransfer(ctx, admin, 11, other); !errors.Is(err, mintgate.ErrInvalidItemID) {
		t.Errorf("unminted item: got %v, want ErrInvalidItemID", err)
	}
	if err := g.ForceTransfer(ctx, admin, 10, mintgate.NullAccount); !errors.Is(err, mintgate.ErrInvalidAccount) {
		t.Errorf("null recipient: got %v, want ErrInvalidAccount", err)
	}
}
