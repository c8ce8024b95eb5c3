// Package mintgate provides a fixed-supply digital collectible sale engine
// for Go applications.
//
// Mintgate is designed as a library, not a service. Import it directly into
// your Go application and drive it from your own transport. It provides:
//
//   - A per-item price schedule with admin-adjustable entries
//   - Dual whitelists (buyer accounts and relaying contracts) with a
//     global enable flag
//   - A unique-mint ledger with per-owner, mint-ordered holdings
//   - A treasury that zeroes its balance before any external settlement
//   - A second generation with a time-boxed holder discount
//   - A best-effort receipt journal with memory, SQLite, PostgreSQL and
//     MongoDB backends
//   - An extensible hook registry for observability and audit trails
//
// # Quick Start
//
// Create a sale with a price per item:
//
//	import (
//	    "github.com/xraph/mintgate"
//	    "github.com/xraph/mintgate/store/sqlite"
//	)
//
//	journal, err := sqlite.New("mintgate.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	prices := make([]mintgate.Amount, 61)
//	for i := range prices {
//	    prices[i] = mintgate.NewAmount(100)
//	}
//
//	s, err := mintgate.New(admin, prices,
//	    mintgate.WithStore(journal),
//	    mintgate.WithBaseURI("http://localhost/"),
//	)
//
// Sell an item:
//
//	err = s.BuyToken(ctx, mintgate.DirectCall(buyer), 53, mintgate.NewAmount(100))
//
// # Generations
//
// A successor sale reuses the whole engine but quotes buyer-aware prices. A
// holder of the previous generation pays 90% of the base price inside a
// configurable window, floored at an optional minimum, and passes the
// purchase gate without a whitelist entry:
//
//	g, err := mintgate.NewSuccessor(admin, prices, s, windowStart)
//	price, _ := g.TokenPriceFor(58, holder)
//
// # Concurrency
//
// Every mutating operation runs under one mutex, so each purchase, airdrop,
// withdrawal and admin update is atomic: it either completes fully or leaves
// no trace. Queries take a read lock.
//
// All prices use 256-bit unsigned integer arithmetic in the smallest currency
// unit; there is no floating point anywhere in the money path.
//
// # TypeID
//
// Sales and receipts use TypeID for globally unique, type-safe identifiers:
//
//	sale_01h2xcejqtf2nbrexx3vqjhp41  // Sale ID
//	rcpt_01h455vb4pex5vsknk084sn02q  // Receipt ID
//
// TypeIDs are K-sortable, making them ideal for database indexes and
// providing natural time-ordering of journal entries.
package mintgate
