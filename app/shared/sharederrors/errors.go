// Package sharederrors holds the storage-level error kinds shared by every
// module's repository layer.
package sharederrors

import "errors"

var (
	// ErrConcurrentModification indicates a serialization or deadlock
	// failure on a guild-scoped transaction. The operation left no partial
	// writes and is safe to retry.
	ErrConcurrentModification = errors.New("concurrent modification, retry")

	// ErrStorageUnavailable indicates the store could not serve the call at
	// all. The enclosing transaction was aborted; the caller may retry the
	// whole operation idempotently.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
