package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "agro_cart/docs" // swagger spec, generated by swag init
	"agro_cart/internal/adapter/http/handlers"
	"agro_cart/internal/adapter/persistence/repository"
	"agro_cart/internal/infrastructure/advisor"
	"agro_cart/internal/infrastructure/config"
	"agro_cart/internal/infrastructure/database"
	"agro_cart/internal/infrastructure/payments"
	"agro_cart/internal/usecase"
	"agro_cart/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Run wires the service and serves it until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	return Serve(ctx, ":"+strconv.Itoa(cfg.Port), NewRouter(h))
}

// Serve listens on addr and shuts the server down gracefully once ctx is
// done. A clean shutdown returns nil.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[http] listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCartRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, error) {
	log := zap.L()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return Handlers{}, err
	}
	handoffRepo := repository.NewHandoffDynamoRepository(ddb)
	paymentRepo := repository.NewCheckoutPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	if cfg.MarketplaceBaseURL == "" {
		log.Warn("MARKETPLACE_BASE_URL not set; hand-offs will be rejected")
	}

	source := advisor.NewHTTPClient(cfg.AdvisorURLs, cfg.AdvisorTimeout)
	cartUseCase := usecase.NewCartUseCase(source)
	handoffUseCase := usecase.NewHandoffUseCase(handoffRepo, cfg.MarketplaceBaseURL)
	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, paymentGateway)

	return Handlers{
		Recommendation: handlers.NewRecommendationHandler(cartUseCase),
		Cart:           handlers.NewCartHandler(cartUseCase),
		Handoff:        handlers.NewHandoffHandler(handoffUseCase),
		Checkout:       handlers.NewCheckoutHandler(checkoutUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
