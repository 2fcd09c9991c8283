package domain

import "errors"

// Returned by document store implementations.
var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
)
