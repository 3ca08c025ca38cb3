package domain

import "errors"

// Sentinel errors returned by domain operations.
var (
	// ErrCountdownLimit is returned when adding to a full countdown list.
	ErrCountdownLimit = errors.New("countdown list is full")
)
