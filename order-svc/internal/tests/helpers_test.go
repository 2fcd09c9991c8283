package tests

import (
	"encoding/json"
	"io"
	"testing"

	"restaurant-ordering/order-svc/internal/cart"
	"restaurant-ordering/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var (
	paella  = domain.Dish{ID: "paella", Name: "Paella", Price: decimal.RequireFromString("18.50"), Category: domain.CategoryMains}
	sangria = domain.Dish{ID: "sangria", Name: "Sangria", Price: decimal.RequireFromString("6.00"), Category: domain.CategoryDrinks}

	customer = &domain.Session{ID: "s1", UserID: "u1", DisplayName: "Ana", Email: "ana@example.com", Role: domain.RoleCustomer}
	admin    = &domain.Session{ID: "s9", UserID: "admin", DisplayName: "Chef", Email: "chef@example.com", Role: domain.RoleAdmin}
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func docOf(t *testing.T, collection, id string, v any) domain.Document {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return domain.Document{Collection: collection, ID: id, Data: data}
}

// paellaCart holds two paellas and one sangria, 43.00 in total.
func paellaCart() *cart.Cart {
	c := cart.New()
	c.Add(paella)
	c.Add(paella)
	c.Add(sangria)
	return c
}
