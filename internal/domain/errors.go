package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNoSeatsRequested = errors.New("at least one seat must be requested")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrNegativePrice    = errors.New("price must not be negative")

	// ErrStorageFailure marks failures of the underlying store, including a
	// violated (show, seat) uniqueness guard. Nothing was persisted when it is
	// returned, so the identical request may be retried.
	ErrStorageFailure = errors.New("storage failure")
)

// InvalidSeatError reports a requested seat that cannot be part of the booking.
type InvalidSeatError struct {
	SeatID int
	Reason string
}

func (e *InvalidSeatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("seat ID %d is not valid for this show's hall", e.SeatID)
	}

	return fmt.Sprintf("seat ID %d %s", e.SeatID, e.Reason)
}

// SeatConflictError is returned when at least one requested seat is already
// booked for the show. ConflictingSeatIDs is kept for logging only.
type SeatConflictError struct {
	ShowID             int
	ConflictingSeatIDs []int
	Suggestions        []Suggestion
}

func (e *SeatConflictError) Error() string {
	return "one or more selected seats are already booked"
}

// StorageError wraps err so that it matches ErrStorageFailure while keeping the
// original cause reachable through errors.Is/As.
func StorageError(err error) error {
	if err == nil || errors.Is(err, ErrStorageFailure) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
