package request

import (
	"math"
	"strings"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/itemcodec"
	"agro_cart/internal/domain/pricing"
)

type HandoffItemRequest struct {
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// HandoffRequest accepts either structured items or an already encoded
// "items" value. Structured items win when both are sent.
type HandoffRequest struct {
	Items        []HandoffItemRequest `json:"items"`
	EncodedItems string               `json:"encoded_items"`
}

// ResolveItems converts the payload into line items. Numbers are truncated
// toward zero and clamped to the line item ceilings; a missing unit price
// falls back to the name-based price.
func (r HandoffRequest) ResolveItems() []entities.LineItem {
	if len(r.Items) == 0 {
		return itemcodec.Decode(strings.TrimSpace(r.EncodedItems))
	}

	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		price := pricing.FallbackPrice(it.Name)
		if it.UnitPrice != nil {
			price = truncate(*it.UnitPrice, entities.MaxUnitPrice)
		}
		items = append(items, entities.LineItem{
			Name:      it.Name,
			Quantity:  entities.ClampQuantity(truncate(it.Quantity, entities.MaxQuantity)),
			UnitPrice: entities.ClampUnitPrice(price),
		})
	}
	return items
}

// truncate converts v toward zero, bounded to [-limit, limit] so the float
// conversion is always in range.
func truncate(v float64, limit int) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > float64(limit):
		return limit
	case v < -float64(limit):
		return -limit
	}
	return int(v)
}
