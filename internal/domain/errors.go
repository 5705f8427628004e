package domain

import "errors"

// Errors returned by the repository and service layers. Handlers collapse
// all of them to a single client error, but callers can tell them apart
// with errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidID      = errors.New("invalid todo id")
	ErrConstraint     = errors.New("constraint violation")
	ErrUnavailable    = errors.New("store unavailable")
	ErrStorage        = errors.New("storage failure")
	ErrUnexpectedRows = errors.New("unexpected number of affected rows")
)
