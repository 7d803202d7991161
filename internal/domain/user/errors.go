package user

import "errors"

var (
	ErrForbidden     = errors.New("forbidden")
	ErrUnknownRole   = errors.New("unknown role")
	ErrMissingClaims = errors.New("missing token claims")
)
