package mintgate_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/xraph/mintgate"
	"github.com/xraph/mintgate/store/memory"
	"github.com/xraph/mintgate/types"
)

// TestDocumentationExamples verifies that the examples in the documentation compile
func TestDocumentationExamples(t *testing.T) {
	t.Run("QuickStartExample", func(t *testing.T) {
		ctx := context.Background()

		// Journal (memory for demo, use SQLite or PostgreSQL in production)
		journal := memory.New()

		prices := make([]mintgate.Amount, 61)
		for i := range prices {
			prices[i] = mintgate.NewAmount(100)
		}

		s, err := mintgate.New(admin, prices,
			mintgate.WithLogger(slog.Default()),
			mintgate.WithStore(journal),
			mintgate.WithBaseURI("http://localhost/"),
		)
		if err != nil {
			t.Fatal(err)
		}

		// Open the sale to everyone
		if _, err := s.FlipWhitelistedStatus(ctx, admin); err != nil {
			t.Fatal(err)
		}

		if err := s.BuyToken(ctx, mintgate.DirectCall(buyer), 53, mintgate.NewAmount(100)); err != nil {
			t.Fatal(err)
		}

		uri, err := s.TokenURI(53)
		if err != nil {
			t.Fatal(err)
		}
		if uri != "http://localhost/53" {
			t.Errorf("got %q", uri)
		}
	})

	t.Run("SuccessorExample", func(t *testing.T) {
		genesis := openSale(t, flatPrices(61, 100))

		windowStart := time.Now()
		g, err := mintgate.NewSuccessor(admin, flatPrices(61, 170), genesis, windowStart)
		if err != nil {
			t.Fatal(err)
		}

		price, err := g.TokenPriceFor(58, types.HexAccount("0x0000000000000000000000000000000000000F01"))
		if err != nil {
			t.Fatal(err)
		}
		if !price.Equal(mintgate.NewAmount(170)) {
			t.Errorf("non-holder price: got %s", price)
		}
	})
}
