package service

import (
	"errors"

	"restaurant-ordering/order-svc/internal/domain"
)

var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrUnauthenticated      = errors.New("sign in required")
	ErrForbidden            = errors.New("administrator role required")
	ErrTableUnavailable     = errors.New("table is no longer available")
	ErrBackendUnavailable   = errors.New("service temporarily unavailable")
	ErrNotFound             = domain.ErrNotFound
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidTransition    = errors.New("order status change not allowed")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidRegistration  = errors.New("a valid email and a password of at least 6 characters are required")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidDish          = errors.New("invalid dish")
	ErrInvalidTable         = errors.New("invalid table")
	ErrInvalidSplit         = errors.New("number of people must be at least 1")
	ErrInvalidRole          = errors.New("role must be admin or customer")
)

// unavailable tags a storage failure as ErrBackendUnavailable while keeping
// the original cause in the chain. Not-found errors pass through untouched.
func unavailable(op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return &backendError{op: op, err: err}
}

type backendError struct {
	op  string
	err error
}

func (e *backendError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *backendError) Unwrap() []error {
	return []error{ErrBackendUnavailable, e.err}
}
