package model

import "errors"

// ErrMissingFields is returned when a create request lacks task or user_id.
var ErrMissingFields = errors.New("task and user_id are required")

// ConflictError reports a write rejected by a storage constraint. Detail carries the
// storage engine's own description of the violation.
type ConflictError struct {
	Detail string
	Err    error
}

func (e *ConflictError) Error() string {
	return e.Detail
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
