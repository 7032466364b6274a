package handlers

import (
	"net/http"
	"strings"

	request "agro_cart/internal/adapter/http/dto/request"
	response "agro_cart/internal/adapter/http/dto/response"
	"agro_cart/internal/domain/handoff"
	"agro_cart/internal/usecase"
	"agro_cart/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler serves the marketplace cart page. Every response carries the
// encoded items the client should use for its next request.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary Rebuild a cart from the items query value
// @Tags cart
// @Produce json
// @Param items query string false "encoded items, e.g. Neem%20Oil:1:250,Urea:2:300"
// @Success 200 {object} response.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart := h.usecase.Hydrate(itemsParam(c))
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// AdjustQuantity godoc
// @Summary Change a line's quantity (never below 1)
// @Tags cart
// @Accept json
// @Produce json
// @Param body body request.CartQuantityRequest true "quantity change"
// @Success 200 {object} response.CartResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /cart/quantity [post]
func (h *CartHandler) AdjustQuantity(c *gin.Context) {
	var payload request.CartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart := h.usecase.AdjustQuantity(payload.Items, *payload.Index, payload.Delta)
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// RemoveItem godoc
// @Summary Remove a line from the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param body body request.CartRemoveRequest true "line to remove"
// @Success 200 {object} response.CartResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /cart/remove [post]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var payload request.CartRemoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart := h.usecase.RemoveItem(payload.Items, *payload.Index)
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// itemsParam returns the "items" query value exactly as sent. Names inside it
// are already escaped, so running the usual query decoding first would turn
// an escaped "," in a name into a segment separator.
func itemsParam(c *gin.Context) string {
	for _, pair := range strings.Split(c.Request.URL.RawQuery, "&") {
		if k, v, _ := strings.Cut(pair, "="); k == handoff.QueryParam {
			return v
		}
	}
	return ""
}
