package interfaces

import (
	"context"
	"encoding/json"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/recommendation"
)

// IRecommendationSource abstracts the upstream analysis agents (disease,
// equipment, scheme). The request payload is opaque to this service; only
// the recommended items of the response are used.
type IRecommendationSource interface {
	Recommend(ctx context.Context, flow recommendation.Flow, payload json.RawMessage) ([]entities.RecommendedItem, error)
}
