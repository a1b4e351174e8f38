package knapsack

import "errors"

var (
	// ErrInvalidTotalSize is returned when Filter is asked for a non-positive number of items.
	ErrInvalidTotalSize = errors.New("filter size limit must be a positive integer")
	// ErrTooManyItems is returned when the exhaustive solver receives 64 or more items,
	// which would overflow the subset enumeration mask.
	ErrTooManyItems = errors.New("exhaustive search supports at most 63 items")
	// ErrNegativeCapacity is returned when the dynamic solver receives a negative capacity.
	ErrNegativeCapacity = errors.New("capacity must be a non-negative integer")
)
