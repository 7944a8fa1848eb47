// Package cart aggregates product selections for one shopping session.
//
// After every exported method returns, product ids are unique within the
// cart and every line has a positive quantity. Totals are recomputed on each
// call.
package cart

import "storefront/internal/models"

// Item is a product line with its quantity.
type Item struct {
	models.Product
	Quantity int `json:"quantity"`
}

type Cart struct {
	items []Item
}

// New restores a cart from a snapshot. Lines with non-positive quantities are
// dropped and repeated product ids are merged into the first occurrence.
func New(items ...Item) *Cart {
	c := &Cart{}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i := c.index(item.ID); i >= 0 {
			c.items[i].Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// Add increments the product's quantity, or appends it with quantity 1.
func (c *Cart) Add(product models.Product) {
	if i := c.index(product.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, Item{Product: product, Quantity: 1})
}

// Remove deletes the line regardless of its quantity.
func (c *Cart) Remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// AdjustQuantity adds delta to the line's quantity. A result of zero or below
// removes the line. Unknown products are ignored.
func (c *Cart) AdjustQuantity(productID string, delta int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if c.items[i].Quantity+delta <= 0 {
		c.Remove(productID)
		return
	}
	c.items[i].Quantity += delta
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	return append([]Item{}, c.items...)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalAmount is Σ price*quantity.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// TotalItems is Σ quantity.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// OrderItems snapshots the lines for an order.
func (c *Cart) OrderItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return items
}

func (c *Cart) index(productID string) int {
	for i := range c.items {
		if c.items[i].ID == productID {
			return i
		}
	}
	return -1
}
