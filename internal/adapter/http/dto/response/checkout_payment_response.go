package response

import (
	"time"

	"agro_cart/internal/domain/entities"
)

type CheckoutPaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	ID           string    `json:"id"`
	EncodedItems string    `json:"encoded_items"`
	Total        int       `json:"total"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCheckoutPayment(p entities.CheckoutPayment) CheckoutPaymentResponse {
	return CheckoutPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		EncodedItems: p.EncodedItems,
		Total:        p.Total,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
