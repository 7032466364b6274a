package entities

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var ErrTotalOverflow = errors.New("cart total is too large")

// Cart is the in-memory line item aggregator.
//
// Identity is positional: duplicate names are separate lines. The total is
// never cached, every call to ComputeTotal walks the current items.
type Cart struct {
	items []LineItem
}

func NewCart(items ...LineItem) *Cart {
	c := &Cart{items: make([]LineItem, 0, len(items))}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add appends the item, coercing it and assigning a session id when missing.
func (c *Cart) Add(item LineItem) {
	item = item.Coerced()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	c.items = append(c.items, item)
}

// IncrementQuantity sets quantity = quantity+delta, clamped to
// [1, MaxQuantity], on the item at index. It reports false when index is out of range.
func (c *Cart) IncrementQuantity(index, delta int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	q, ok := addChecked(c.items[index].Quantity, delta)
	if !ok {
		q = MaxQuantity
		if delta < 0 {
			q = 1
		}
	}
	c.items[index].Quantity = ClampQuantity(q)
	return true
}

// RemoveItem drops the item at index, shifting later items down.
func (c *Cart) RemoveItem(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// IndexOf returns the position of the item with the given session id, or -1.
func (c *Cart) IndexOf(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// ComputeTotal saturates at math.MaxInt. Callers that charge or record the
// total use CheckedTotal.
func (c *Cart) ComputeTotal() int {
	total, err := c.CheckedTotal()
	if err != nil {
		return math.MaxInt
	}
	return total
}

// CheckedTotal returns the sum of line totals, or ErrTotalOverflow when the
// sum does not fit an int.
func (c *Cart) CheckedTotal() (int, error) {
	total := 0
	for _, it := range c.items {
		line, ok := mulChecked(it.Quantity, it.UnitPrice)
		if !ok {
			return 0, ErrTotalOverflow
		}
		if total, ok = addChecked(total, line); !ok {
			return 0, ErrTotalOverflow
		}
	}
	return total, nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}
