package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	response "agro_cart/internal/adapter/http/dto/response"
	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/handoff"
	"agro_cart/internal/usecase"
	"agro_cart/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler is the marketplace side: it charges the cart it was
// opened with through the payment gateway.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout godoc
// @Summary Pay for a handed-off cart
// @Description The amount is the decoded cart total. The body is a Mercado Pago payment payload, optionally wrapped in {"mp_payload": ...}.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param items query string true "encoded items"
// @Success 201 {object} response.CheckoutPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /marketplace/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	log := zap.L()
	rawItems := itemsParam(c)
	log.Info("[checkout][handler] checkout start", zap.Int("raw_items_len", len(rawItems)))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !isPaymentGatewayMockEnabled() {
			log.Info("[checkout][handler] invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Info("[checkout][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Checkout(c.Request.Context(), rawItems, mpPayload)
	if err != nil {
		log.Warn("[checkout][handler] checkout failed", zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[checkout][handler] checkout success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromCheckoutPayment(created))
}

// GetPayment godoc
// @Summary Get a checkout payment
// @Tags marketplace
// @Produce json
// @Param id path string true "payment id"
// @Success 200 {object} response.CheckoutPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /marketplace/payments/{id} [get]
func (h *CheckoutHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutPayment(p))
}

// readMPPayload returns the request body, unwrapping an {"mp_payload": ...}
// envelope when present. An empty body reads as {}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, handoff.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrTotalOverflow):
		return pkg.NewDomainErrorSimple("CART_TOTAL_TOO_LARGE", "Cart total is too large", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCheckoutAmount):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_AMOUNT", "Cart total must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCheckoutPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
