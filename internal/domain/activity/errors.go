package activity

import "errors"

var (
	ErrActivityNotFound = errors.New("log not found")
	ErrInvalidIdleStart = errors.New("invalid idle_start")
	ErrInvalidIdleEnd   = errors.New("invalid idle_end")

	// State errors
	ErrNoIdleStart   = errors.New("log has no idle_start")
	ErrAlreadyClosed = errors.New("log already closed")
)
