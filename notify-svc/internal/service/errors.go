package service

import "errors"

var (
	ErrNotFound        = errors.New("notification not found")
	ErrUnauthenticated = errors.New("sign in required")
	ErrForbidden       = errors.New("administrator role required")
)
