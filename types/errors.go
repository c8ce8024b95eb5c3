package types

import "errors"

// Domain sentinel errors. They live here so that every component package can
// return them without importing the root package; the root package re-exports
// them for callers.
var (
	ErrInvalidItemID       = errors.New("mintgate: invalid item id")
	ErrAlreadyMinted       = errors.New("mintgate: item already minted")
	ErrItemNotFound        = errors.New("mintgate: item does not exist")
	ErrNotWhitelisted      = errors.New("mintgate: caller is not whitelisted")
	ErrSalePaused          = errors.New("mintgate: sale is paused")
	ErrUnauthorized        = errors.New("mintgate: unauthorized")
	ErrEmptyInput          = errors.New("mintgate: empty input list")
	ErrInvalidPrice        = errors.New("mintgate: invalid price")
	ErrInvalidAccount      = errors.New("mintgate: invalid account")
	ErrInsufficientPayment = errors.New("mintgate: insufficient payment")
	ErrEmptyBalance        = errors.New("mintgate: treasury balance is empty")
	ErrSaleAlreadyStarted  = errors.New("mintgate: sale already started")
)
