package repository

import "errors"

// Package repository defines data access contracts for the in-memory stores.
// No business logic here — strictly collection operations.

var (
	// ErrNotFound is returned when a record with the given ID does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCurrentUser is returned when deleting the acting user is attempted.
	ErrCurrentUser = errors.New("cannot delete the current user")
)
