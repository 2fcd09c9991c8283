package service

import "restaurant-ordering/order-svc/internal/domain"

// transitions lists the allowed status moves. Delivered and cancelled are
// terminal.
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:   {domain.StatusDelivered, domain.StatusCancelled},
	domain.StatusDelivered: nil,
	domain.StatusCancelled: nil,
}

func ParseStatus(value string) (domain.OrderStatus, error) {
	status := domain.OrderStatus(value)
	if _, ok := transitions[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func CanTransition(from, to domain.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
