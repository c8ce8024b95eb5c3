package schedule_test

import (
	"errors"
	"testing"

	"github.com/xraph/mintgate/schedule"
	"github.com/xraph/mintgate/types"
)

func amounts(vals ...uint64) []types.Amount {
	out := make([]types.Amount, len(vals))
	for i, v := range vals {
		out[i] = types.NewAmount(v)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if _, err := schedule.New(nil); !errors.Is(err, types.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("ZeroEntry", func(t *testing.T) {
		if _, err := schedule.New(amounts(10, 0, 20)); !errors.Is(err, types.ErrInvalidPrice) {
			t.Errorf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("CopiesInput", func(t *testing.T) {
		in := amounts(10, 20)
		s, err := schedule.New(in)
		if err != nil {
			t.Fatal(err)
		}
		in[0] = types.NewAmount(999)
		got, _ := s.PriceOf(0)
		if !got.Equal(types.NewAmount(10)) {
			t.Error("schedule shares backing array with caller input")
		}
	})
}

func TestPriceOf(t *testing.T) {
	s, err := schedule.New(amounts(10, 20, 30))
	if err != nil {
		t.Fatal(err)
	}

	if s.Len() != 3 {
		t.Errorf("Len: got %d, want 3", s.Len())
	}

	got, err := s.PriceOf(2)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(types.NewAmount(30)) {
		t.Errorf("got %s, want 30", got)
	}

	if _, err := s.PriceOf(3); !errors.Is(err, types.ErrInvalidItemID) {
		t.Errorf("expected ErrInvalidItemID, got %v", err)
	}
}

func TestSetPrice(t *testing.T) {
	s, err := schedule.New(amounts(10, 20))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetPrice(1, types.NewAmount(99)); err != nil {
		t.Fatal(err)
	}
	got, _ := s.PriceOf(1)
	if !got.Equal(types.NewAmount(99)) {
		t.Errorf("got %s, want 99", got)
	}

	if err := s.SetPrice(5, types.NewAmount(1)); !errors.Is(err, types.ErrInvalidItemID) {
		t.Errorf("expected ErrInvalidItemID, got %v", err)
	}
	if err := s.SetPrice(0, types.ZeroAmount()); !errors.Is(err, types.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	// Failed updates leave the entry untouched.
	got, _ = s.PriceOf(0)
	if !got.Equal(types.NewAmount(10)) {
		t.Errorf("entry 0 changed by rejected update: %s", got)
	}
}
