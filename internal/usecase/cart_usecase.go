package usecase

import (
	"context"
	"encoding/json"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/itemcodec"
	"agro_cart/internal/domain/recommendation"
	"agro_cart/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICartUseCase exposes the cart operations behind the producer and
// marketplace pages.
//
// The cart itself is never stored: every operation starts from the encoded
// "items" value (or from a recommendation payload) and the caller gets the
// next cart back, so the URL remains the source of truth.
//   - recommendation bridge => FromRecommendations(), Analyze()
//   - page-load bootstrap   => Hydrate()
//   - quantity +/-, remove  => AdjustQuantity(), RemoveItem()

type ICartUseCase interface {
	FromRecommendations(flow recommendation.Flow, equipmentType string, recs []entities.RecommendedItem) *entities.Cart
	Analyze(ctx context.Context, flow recommendation.Flow, equipmentType string, payload json.RawMessage) (cart *entities.Cart, usedFallback bool)
	Hydrate(rawItems string) *entities.Cart
	AdjustQuantity(rawItems string, index, delta int) *entities.Cart
	RemoveItem(rawItems string, index int) *entities.Cart
}

type CartUseCase struct {
	source interfaces.IRecommendationSource
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(source interfaces.IRecommendationSource) *CartUseCase {
	return &CartUseCase{source: source}
}

func (u *CartUseCase) FromRecommendations(flow recommendation.Flow, equipmentType string, recs []entities.RecommendedItem) *entities.Cart {
	label := recommendation.FallbackLabel(flow, equipmentType)
	return entities.NewCart(recommendation.ToLineItems(recs, label)...)
}

// Analyze asks the upstream agent for recommendations. A failed or empty
// analysis still yields a cart built from the generic fallback record.
func (u *CartUseCase) Analyze(ctx context.Context, flow recommendation.Flow, equipmentType string, payload json.RawMessage) (*entities.Cart, bool) {
	log := zap.L().With(zap.String("flow", string(flow)))
	label := recommendation.FallbackLabel(flow, equipmentType)

	if u.source == nil {
		log.Warn("[cart][usecase] recommendation source not configured; using fallback")
		return u.FromRecommendations(flow, equipmentType, recommendation.GenericFallback(label)), true
	}

	recs, err := u.source.Recommend(ctx, flow, payload)
	if err != nil {
		log.Warn("[cart][usecase] upstream analysis failed; using fallback", zap.Error(err))
		return u.FromRecommendations(flow, equipmentType, recommendation.GenericFallback(label)), true
	}
	if len(recs) == 0 {
		log.Info("[cart][usecase] upstream analysis returned no items; using fallback")
		return u.FromRecommendations(flow, equipmentType, recommendation.GenericFallback(label)), true
	}

	log.Info("[cart][usecase] upstream analysis success", zap.Int("recommendations", len(recs)))
	return u.FromRecommendations(flow, equipmentType, recs), false
}

func (u *CartUseCase) Hydrate(rawItems string) *entities.Cart {
	return entities.NewCart(itemcodec.Decode(rawItems)...)
}

func (u *CartUseCase) AdjustQuantity(rawItems string, index, delta int) *entities.Cart {
	cart := u.Hydrate(rawItems)
	if !cart.IncrementQuantity(index, delta) {
		zap.L().Debug("[cart][usecase] adjust quantity ignored; index out of range", zap.Int("index", index), zap.Int("items", cart.Len()))
	}
	return cart
}

func (u *CartUseCase) RemoveItem(rawItems string, index int) *entities.Cart {
	cart := u.Hydrate(rawItems)
	if !cart.RemoveItem(index) {
		zap.L().Debug("[cart][usecase] remove ignored; index out of range", zap.Int("index", index), zap.Int("items", cart.Len()))
	}
	return cart
}
