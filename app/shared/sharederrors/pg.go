package sharederrors

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Postgres error codes that indicate a retryable write conflict.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// MapStorageError classifies a driver error into the engine's storage error
// kinds. Serialization failures and deadlocks become
// ErrConcurrentModification; connection-level failures become
// ErrStorageUnavailable; anything else passes through unchanged.
func MapStorageError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case pgSerializationFailure, pgDeadlockDetected:
			return fmt.Errorf("%w: %v", ErrConcurrentModification, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return err
}
