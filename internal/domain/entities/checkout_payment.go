package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps a MercadoPago status onto PaymentStatus.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved":
		return PaymentStatusApproved
	case "rejected", "cancelled":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// CheckoutPayment is the payment taken by the marketplace for a handed-off cart.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EncodedItems keeps the exact query value the cart was rebuilt from, so the
// charged total can be recomputed later.
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for audit.
//   - MPPayload is the parsed form of the same body.
type CheckoutPayment struct {
	ID           string        `json:"id"`
	EncodedItems string        `json:"encoded_items"`
	Total        int           `json:"total"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
