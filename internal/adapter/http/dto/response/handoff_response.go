package response

import (
	"time"

	"agro_cart/internal/domain/entities"
)

type HandoffResponse struct {
	HandoffID    string             `json:"handoff_id"`
	ID           string             `json:"id"`
	URL          string             `json:"url"`
	BaseURL      string             `json:"base_url"`
	EncodedItems string             `json:"encoded_items"`
	Items        []CartItemResponse `json:"items"`
	Total        int                `json:"total"`
	ItemCount    int                `json:"item_count"`
	CreatedAt    time.Time          `json:"created_at"`
}

func FromHandoff(h entities.Handoff) HandoffResponse {
	return HandoffResponse{
		HandoffID:    h.ID,
		ID:           h.ID,
		URL:          h.URL,
		BaseURL:      h.BaseURL,
		EncodedItems: h.EncodedItems,
		Items:        FromLineItems(h.Items),
		Total:        h.Total,
		ItemCount:    len(h.Items),
		CreatedAt:    h.CreatedAt,
	}
}
