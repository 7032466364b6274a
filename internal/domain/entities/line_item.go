package entities

import "math"

// Per-field ceilings. A line is worth at most MaxQuantity*MaxUnitPrice, which
// fits an int64, so only the cart sum can overflow.
const (
	MaxQuantity  = 1_000_000
	MaxUnitPrice = 1_000_000_000
)

// LineItem is one row of a cart: a named purchasable thing with a quantity
// and a unit price in whole rupees.
//
// Invariants (enforced by Cart and by the item codec):
//   - 1 <= Quantity <= MaxQuantity
//   - 0 <= UnitPrice <= MaxUnitPrice
//
// ID is a per-session identifier assigned when the item enters a Cart. It is
// never serialized into the hand-off query string; names are not unique.
type LineItem struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// LineTotal saturates at math.MaxInt instead of wrapping.
func (li LineItem) LineTotal() int {
	total, ok := mulChecked(li.Quantity, li.UnitPrice)
	if !ok {
		return math.MaxInt
	}
	return total
}

// Coerced returns a copy with quantity clamped to [1, MaxQuantity] and price
// clamped to [0, MaxUnitPrice].
func (li LineItem) Coerced() LineItem {
	li.Quantity = ClampQuantity(li.Quantity)
	li.UnitPrice = ClampUnitPrice(li.UnitPrice)
	return li
}

func ClampQuantity(q int) int {
	switch {
	case q < 1:
		return 1
	case q > MaxQuantity:
		return MaxQuantity
	}
	return q
}

func ClampUnitPrice(p int) int {
	switch {
	case p < 0:
		return 0
	case p > MaxUnitPrice:
		return MaxUnitPrice
	}
	return p
}

func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	return p, true
}

func addChecked(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}
