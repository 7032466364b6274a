package interfaces

import (
	"context"
	"agro_cart/internal/domain/entities"
)

// ICheckoutPaymentRepository abstracts DynamoDB persistence for CheckoutPayment.

type ICheckoutPaymentRepository interface {
	Create(ctx context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error)
}
