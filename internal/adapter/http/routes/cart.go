package routes

import (
	"agro_cart/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing            = "/ping"
	PathRecommendations = "/recommendations"
	PathCart            = "/cart"
	PathHandoffs        = "/handoffs"
	PathMarketplace     = "/marketplace"
)

// Handlers groups everything the /v1 routes dispatch to.
type Handlers struct {
	Recommendation *handlers.RecommendationHandler
	Cart           *handlers.CartHandler
	Handoff        *handlers.HandoffHandler
	Checkout       *handlers.CheckoutHandler
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCartRoutes(rg *gin.RouterGroup, h Handlers) {
	recs := rg.Group(PathRecommendations)
	{
		recs.POST("/cart", h.Recommendation.BuildCart)
		recs.POST("/analyze", h.Recommendation.Analyze)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("/quantity", h.Cart.AdjustQuantity)
		cart.POST("/remove", h.Cart.RemoveItem)
	}

	handoffs := rg.Group(PathHandoffs)
	{
		handoffs.POST("", h.Handoff.CreateHandoff)
		handoffs.GET("/:id", h.Handoff.GetHandoff)
	}

	market := rg.Group(PathMarketplace)
	{
		market.POST("/checkout", h.Checkout.Checkout)
		market.GET("/payments/:id", h.Checkout.GetPayment)
	}
}
