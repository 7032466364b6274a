package interfaces

import (
	"context"
	"agro_cart/internal/domain/entities"
)

// IHandoffRepository abstracts DynamoDB persistence for the hand-off log.
//
// The log is append-only: records are created once per hand-off and read
// back by id for support and reconciliation. Carts are never rebuilt from it.

type IHandoffRepository interface {
	Create(ctx context.Context, h entities.Handoff) (entities.Handoff, error)
	GetByID(ctx context.Context, id string) (entities.Handoff, error)
}
