package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "agro_cart/docs"
	"agro_cart/internal/adapter/http/routes"
	"agro_cart/internal/infrastructure/config"
	"agro_cart/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Agro Cart API
// @version         1.0
// @description     Cart hand-off between the farming assistant and the marketplace.
// @description     Carts travel in the "items" query value; hand-offs and checkout payments are recorded in DynamoDB.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
		return err
	}
	zap.L().Info("server stopped")
	return nil
}
