package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage error")

	// ErrStaleVersion is returned when a loan was modified since it was read.
	ErrStaleVersion = fmt.Errorf("%w: stale loan version", ErrConflict)
)
