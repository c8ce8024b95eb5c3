package mintgate

import (
	"errors"

	"github.com/xraph/mintgate/types"
)

// Sentinel errors for common failure scenarios.
var (
	// General errors
	ErrNotFound      = errors.New("mintgate: not found")
	ErrAlreadyExists = errors.New("mintgate: already exists")
	ErrInvalidInput  = errors.New("mintgate: invalid input")

	// Sale errors, re-exported from types so callers only import the root.
	ErrInvalidItemID       = types.ErrInvalidItemID
	ErrAlreadyMinted       = types.ErrAlreadyMinted
	ErrItemNotFound        = types.ErrItemNotFound
	ErrNotWhitelisted      = types.ErrNotWhitelisted
	ErrSalePaused          = types.ErrSalePaused
	ErrUnauthorized        = types.ErrUnauthorized
	ErrEmptyInput          = types.ErrEmptyInput
	ErrInvalidPrice        = types.ErrInvalidPrice
	ErrInvalidAccount      = types.ErrInvalidAccount
	ErrInsufficientPayment = types.ErrInsufficientPayment
	ErrEmptyBalance        = types.ErrEmptyBalance
	ErrSaleAlreadyStarted  = types.ErrSaleAlreadyStarted
)

// IsNotFound returns true if the error indicates a missing record or item.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrItemNotFound)
}

// IsAuthError returns true if the error is an authorization failure: an
// admin operation from a non-admin account or a gated purchase from an
// account outside the whitelist.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotWhitelisted)
}

// IsInputError returns true if the error indicates a malformed request
// rather than a state conflict.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidItemID) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidAccount) ||
		errors.Is(err, ErrEmptyInput)
}

// IsSaleClosed returns true if the error means the purchase path is
// currently unavailable, regardless of the buyer or item.
func IsSaleClosed(err error) bool {
	return errors.Is(err, ErrSalePaused)
}
