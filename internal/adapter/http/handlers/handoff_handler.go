package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "agro_cart/internal/adapter/http/dto/request"
	response "agro_cart/internal/adapter/http/dto/response"
	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/handoff"
	"agro_cart/internal/usecase"
	"agro_cart/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidHandoffPayload = pkg.NewDomainErrorSimple("INVALID_HANDOFF_INPUT", "Invalid hand-off payload", http.StatusBadRequest)

// HandoffHandler is the producer side of the hand-off. With ?navigate=true
// the browser is sent straight to the marketplace.

type HandoffHandler struct {
	usecase usecase.IHandoffUseCase
}

func NewHandoffHandler(uc usecase.IHandoffUseCase) *HandoffHandler {
	return &HandoffHandler{usecase: uc}
}

// redirectNavigator navigates the calling browser with a 303 See Other.
type redirectNavigator struct {
	c *gin.Context
}

var _ handoff.Navigator = redirectNavigator{}

func (n redirectNavigator) Navigate(_ context.Context, url string) error {
	n.c.Redirect(http.StatusSeeOther, url)
	return nil
}

// CreateHandoff godoc
// @Summary Hand the cart off to the marketplace
// @Description Records the hand-off and returns the marketplace URL. With navigate=true the response is a 303 redirect to it.
// @Tags handoffs
// @Accept json
// @Produce json
// @Param navigate query bool false "redirect to the marketplace"
// @Param body body request.HandoffRequest true "cart items"
// @Success 201 {object} response.HandoffResponse
// @Success 303 {string} string "redirect to the marketplace"
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /handoffs [post]
func (h *HandoffHandler) CreateHandoff(c *gin.Context) {
	var payload request.HandoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHandoffPayload.HTTPStatus, errInvalidHandoffPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Prepare(c.Request.Context(), payload.ResolveItems())
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if navigate, _ := strconv.ParseBool(c.Query("navigate")); navigate {
		url, err := handoff.Invoke(c.Request.Context(), redirectNavigator{c: c}, created.BaseURL, created.Items)
		if err != nil {
			zap.L().Warn("[handoff][handler] navigation failed", zap.String("handoff_id", created.ID), zap.Error(err))
			appErr := mapHandoffError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		zap.L().Info("[handoff][handler] redirected to marketplace", zap.String("handoff_id", created.ID), zap.String("url", url))
		return
	}
	c.JSON(http.StatusCreated, response.FromHandoff(created))
}

// GetHandoff godoc
// @Summary Get a recorded hand-off
// @Tags handoffs
// @Produce json
// @Param id path string true "hand-off id"
// @Success 200 {object} response.HandoffResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /handoffs/{id} [get]
func (h *HandoffHandler) GetHandoff(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHandoff(found))
}

func mapHandoffError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, handoff.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrTotalOverflow):
		return pkg.NewDomainErrorSimple("CART_TOTAL_TOO_LARGE", "Cart total is too large", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidHandoffID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHandoffNotFound):
		return pkg.NewDomainErrorSimple("HANDOFF_NOT_FOUND", "Hand-off not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMarketplaceNotConfigured):
		return pkg.NewDomainErrorSimple("MARKETPLACE_NOT_CONFIGURED", "Marketplace is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
