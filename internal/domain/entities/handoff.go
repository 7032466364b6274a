package entities

import "time"

// Handoff is the audit record of one cart pushed to the marketplace.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The record is write-only from the cart's point of view: carts are always
// rebuilt from the encoded items string, never from this table.
type Handoff struct {
	ID           string     `json:"id"`
	BaseURL      string     `json:"base_url"`
	URL          string     `json:"url"`
	EncodedItems string     `json:"encoded_items"`
	Items        []LineItem `json:"items"`
	Total        int        `json:"total"`
	CreatedAt    time.Time  `json:"created_at"`
}
