package response

import (
	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/itemcodec"
)

type CartItemResponse struct {
	Index     int    `json:"index"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	LineTotal int    `json:"line_total"`
}

// CartResponse is the cart view. EncodedItems is the value the client puts
// back into the "items" query parameter for the next request.
type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	Total        int                `json:"total"`
	EncodedItems string             `json:"encoded_items"`
	ItemCount    int                `json:"item_count"`
}

// RecommendationCartResponse reports whether the local fallback replaced
// the upstream analysis.
type RecommendationCartResponse struct {
	CartResponse
	UsedFallback bool `json:"used_fallback"`
}

func FromLineItems(items []entities.LineItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for i, it := range items {
		out = append(out, CartItemResponse{
			Index:     i,
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
		})
	}
	return out
}

func FromCart(c *entities.Cart) CartResponse {
	items := c.Items()
	return CartResponse{
		Items:        FromLineItems(items),
		Total:        c.ComputeTotal(),
		EncodedItems: itemcodec.Encode(items),
		ItemCount:    len(items),
	}
}
