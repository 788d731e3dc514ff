package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Error kinds surfaced by the reservation core. Callers match with errors.Is;
// every failure path maps to exactly one kind, there is no catch-all.
var (
	ErrInvalidInterval    = errors.New("check-in date must fall strictly before check-out date")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("room already occupied for the requested dates")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotOwner           = errors.New("booking belongs to another customer")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

const (
	readRetries      = 3
	readRetryBackoff = 50 * time.Millisecond
)

func notFound(resource string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, resource, id)
}

// retryable reports whether an error is a transient storage failure. Domain
// errors and record misses must surface unchanged, never be retried.
func retryable(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, ErrInvalidInterval),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

// withReadRetry runs a read-only query, retrying a bounded number of times
// with backoff when the store looks unreachable. Writes never go through
// here: retrying an insert can double-book a room.
func withReadRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readRetryBackoff << (attempt - 1)):
			}
		}
		if err = fn(); !retryable(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
