package ledger

import "errors"

// Failure taxonomy of the quota ledger. Every mutating operation leaves
// state untouched when it returns one of these.
var (
	// ErrInvalidInput marks requests with bad fields, rejected before any
	// mutation happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientQuota marks a contribution that asks for more shares
	// than the gift has remaining.
	ErrInsufficientQuota = errors.New("insufficient remaining shares")

	// ErrNotFound marks operations referencing an id that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrHasContributions blocks deletion of a gift that has already
	// received contributions.
	ErrHasContributions = errors.New("gift has contributions")

	// ErrStorageUnavailable wraps transient storage failures; callers should
	// tell the user to retry later.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
