package handlers

import (
	"net/http"

	request "agro_cart/internal/adapter/http/dto/request"
	response "agro_cart/internal/adapter/http/dto/response"
	"agro_cart/internal/domain/recommendation"
	"agro_cart/internal/usecase"
	"agro_cart/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRecommendationPayload = pkg.NewDomainErrorSimple("INVALID_RECOMMENDATION_INPUT", "Invalid recommendation payload", http.StatusBadRequest)
	errInvalidFlow                  = pkg.NewDomainErrorSimple("INVALID_FLOW", "Unknown recommendation flow", http.StatusBadRequest)
)

// RecommendationHandler turns producer-side recommendations into a cart.

type RecommendationHandler struct {
	usecase usecase.ICartUseCase
}

func NewRecommendationHandler(uc usecase.ICartUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// BuildCart godoc
// @Summary Build a cart from recommendation records
// @Description Records may be bare strings or objects with "item" or "name". Each becomes one priced line item.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param body body request.RecommendationCartRequest true "recommendations"
// @Success 200 {object} response.RecommendationCartResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /recommendations/cart [post]
func (h *RecommendationHandler) BuildCart(c *gin.Context) {
	var payload request.RecommendationCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecommendationPayload.HTTPStatus, errInvalidRecommendationPayload.ToHTTPError())
		return
	}
	flow, ok := recommendation.ParseFlow(payload.Flow)
	if !ok {
		c.JSON(errInvalidFlow.HTTPStatus, errInvalidFlow.ToHTTPError())
		return
	}

	cart := h.usecase.FromRecommendations(flow, payload.EquipmentType, payload.Recommendations)
	c.JSON(http.StatusOK, response.RecommendationCartResponse{CartResponse: response.FromCart(cart)})
}

// Analyze godoc
// @Summary Run an upstream analysis and build a cart from its output
// @Description A failed or empty analysis yields a one-item cart built from the flow's fallback label.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param body body request.AnalyzeRequest true "analysis request"
// @Success 200 {object} response.RecommendationCartResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /recommendations/analyze [post]
func (h *RecommendationHandler) Analyze(c *gin.Context) {
	var payload request.AnalyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecommendationPayload.HTTPStatus, errInvalidRecommendationPayload.ToHTTPError())
		return
	}
	flow, ok := recommendation.ParseFlow(payload.Flow)
	if !ok {
		c.JSON(errInvalidFlow.HTTPStatus, errInvalidFlow.ToHTTPError())
		return
	}

	cart, usedFallback := h.usecase.Analyze(c.Request.Context(), flow, payload.EquipmentType, payload.Payload)
	zap.L().Info("[recommendation][handler] analyze done",
		zap.String("flow", string(flow)),
		zap.Int("items", cart.Len()),
		zap.Bool("used_fallback", usedFallback))

	c.JSON(http.StatusOK, response.RecommendationCartResponse{
		CartResponse: response.FromCart(cart),
		UsedFallback: usedFallback,
	})
}
