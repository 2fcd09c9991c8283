package service

import (
	"strings"

	"restaurant-ordering/order-svc/internal/domain"
)

const (
	usersCollection   = "users"
	emailsCollection  = "emails"
	tablesCollection  = "tables"
	ordersGroup       = "orders"
	menuCollectionTop = "menu"
)

func OrdersCollection(userID string) string {
	return usersCollection + "/" + userID + "/" + ordersGroup
}

func MenuCollection(category domain.Category) string {
	return menuCollectionTop + "/" + string(category)
}

// ownerOf extracts the user id from a "users/<uid>/orders" collection path.
func ownerOf(collection string) string {
	rest, ok := strings.CutPrefix(collection, usersCollection+"/")
	if !ok {
		return ""
	}
	owner, ok := strings.CutSuffix(rest, "/"+ordersGroup)
	if !ok || owner == "" || strings.Contains(owner, "/") {
		return ""
	}
	return owner
}
