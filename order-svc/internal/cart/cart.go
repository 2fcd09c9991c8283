// Package cart holds the per-session line-item store. A Cart is owned by a
// single session and is never shared; it is not safe for concurrent use.
package cart

import (
	"encoding/json"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	DishID    string          `json:"dish_id"`
	Category  domain.Category `json:"category"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l LineItem) Key() string {
	return Key(l.Category, l.DishID)
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Key identifies a dish across categories; dish ids are only unique within
// their category.
func Key(category domain.Category, dishID string) string {
	return string(category) + "/" + dishID
}

type Cart struct {
	keys  []string
	items map[string]*LineItem
}

func New() *Cart {
	return &Cart{items: make(map[string]*LineItem)}
}

// Add increments the quantity of dish, inserting it with quantity 1 when absent.
func (c *Cart) Add(dish domain.Dish) {
	key := Key(dish.Category, dish.ID)
	if item, ok := c.items[key]; ok {
		item.Quantity++
		return
	}
	c.items[key] = &LineItem{
		DishID:    dish.ID,
		Category:  dish.Category,
		Name:      dish.Name,
		UnitPrice: dish.Price,
		Quantity:  1,
	}
	c.keys = append(c.keys, key)
}

// Remove decrements the quantity of dish and drops the line item once it
// would reach zero. Removing an absent dish is a no-op.
func (c *Cart) Remove(dish domain.Dish) {
	key := Key(dish.Category, dish.ID)
	item, ok := c.items[key]
	if !ok {
		return
	}
	if item.Quantity > 1 {
		item.Quantity--
		return
	}
	c.delete(key)
}

func (c *Cart) delete(key string) {
	delete(c.items, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Total is computed from unrounded unit prices; round only when rendering.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, key := range c.keys {
		total = total.Add(c.items[key].Subtotal())
	}
	return total
}

// Items returns copies of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, 0, len(c.keys))
	for _, key := range c.keys {
		items = append(items, *c.items[key])
	}
	return items
}

func (c *Cart) Quantity(category domain.Category, dishID string) int {
	if item, ok := c.items[Key(category, dishID)]; ok {
		return item.Quantity
	}
	return 0
}

func (c *Cart) Len() int {
	return len(c.keys)
}

func (c *Cart) IsEmpty() bool {
	return len(c.keys) == 0
}

func (c *Cart) Clear() {
	c.keys = nil
	c.items = make(map[string]*LineItem)
}

// Snapshot returns an independent copy; mutating either cart afterwards
// does not affect the other.
func (c *Cart) Snapshot() *Cart {
	snapshot := New()
	for _, item := range c.Items() {
		copied := item
		snapshot.items[item.Key()] = &copied
		snapshot.keys = append(snapshot.keys, item.Key())
	}
	return snapshot
}

type cartJSON struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartJSON{Items: c.Items(), Total: c.Total()})
}

// UnmarshalJSON rebuilds the cart in stored order. Line items with a
// quantity below one are dropped and repeated keys are merged.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var payload cartJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	rebuilt := New()
	for _, item := range payload.Items {
		if item.Quantity < 1 {
			continue
		}
		if existing, ok := rebuilt.items[item.Key()]; ok {
			existing.Quantity += item.Quantity
			continue
		}
		copied := item
		rebuilt.items[item.Key()] = &copied
		rebuilt.keys = append(rebuilt.keys, item.Key())
	}

	*c = *rebuilt
	return nil
}
