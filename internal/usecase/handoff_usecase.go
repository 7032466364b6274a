package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/handoff"
	"agro_cart/internal/domain/itemcodec"
	"agro_cart/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrHandoffNotFound          = errors.New("handoff not found")
	ErrInvalidHandoffID         = errors.New("invalid handoff id")
	ErrMarketplaceNotConfigured = errors.New("marketplace base url not configured")
)

// IHandoffUseCase prepares and records cart hand-offs to the marketplace.
//
// Prepare is the "Result" half of the hand-off: it rejects empty carts and
// returns the URL to navigate to. Navigation is left to the caller (HTTP
// redirect, CLI browser) and is never awaited.

type IHandoffUseCase interface {
	Prepare(ctx context.Context, items []entities.LineItem) (entities.Handoff, error)
	GetByID(ctx context.Context, id string) (entities.Handoff, error)
}

type HandoffUseCase struct {
	repo    interfaces.IHandoffRepository
	baseURL string
}

var _ IHandoffUseCase = (*HandoffUseCase)(nil)

func NewHandoffUseCase(repo interfaces.IHandoffRepository, marketplaceBaseURL string) *HandoffUseCase {
	return &HandoffUseCase{repo: repo, baseURL: strings.TrimSpace(marketplaceBaseURL)}
}

func (u *HandoffUseCase) Prepare(ctx context.Context, items []entities.LineItem) (entities.Handoff, error) {
	log := zap.L()
	log.Info("[handoff][usecase] prepare start", zap.Int("items", len(items)))

	if err := handoff.Validate(items); err != nil {
		log.Info("[handoff][usecase] rejected empty cart")
		return entities.Handoff{}, err
	}
	if u.baseURL == "" {
		log.Error("[handoff][usecase] marketplace base url not configured")
		return entities.Handoff{}, ErrMarketplaceNotConfigured
	}
	if u.repo == nil {
		log.Error("[handoff][usecase] handoff repository not configured")
		return entities.Handoff{}, errors.New("handoff repository not configured")
	}

	cart := entities.NewCart(handoff.Usable(items)...)
	usable := cart.Items()
	total, err := cart.CheckedTotal()
	if err != nil {
		log.Info("[handoff][usecase] rejected cart total overflow", zap.Int("items", len(usable)))
		return entities.Handoff{}, err
	}

	h := entities.Handoff{
		ID:           uuid.NewString(),
		BaseURL:      u.baseURL,
		URL:          handoff.BuildURL(u.baseURL, usable),
		EncodedItems: itemcodec.Encode(usable),
		Items:        usable,
		Total:        total,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, h)
	if err != nil {
		log.Error("[handoff][usecase] repository create failed", zap.String("handoff_id", h.ID), zap.Error(err))
		return entities.Handoff{}, err
	}
	log.Info("[handoff][usecase] prepare success",
		zap.String("handoff_id", created.ID),
		zap.Int("items", len(created.Items)),
		zap.Int("total", created.Total))
	return created, nil
}

func (u *HandoffUseCase) GetByID(ctx context.Context, id string) (entities.Handoff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Handoff{}, ErrInvalidHandoffID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Handoff{}, err
	}
	if h.ID == "" {
		return entities.Handoff{}, ErrHandoffNotFound
	}
	return h, nil
}
