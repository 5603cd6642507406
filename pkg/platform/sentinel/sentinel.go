package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, locks and outbound adapters
// return these (optionally wrapped) so the claim service can translate them into
// domain errors:
//   - ErrNotFound: the Pix-key service or a store has no such record
//   - ErrConflict: a record with the same identity already exists
//   - ErrLockHeld: a per-key lock could not be acquired before the wait expired
//   - ErrUnavailable: a dependency is temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrLockHeld    = errors.New("lock held")
	ErrUnavailable = errors.New("unavailable")
)
