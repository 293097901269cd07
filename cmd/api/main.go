package main

import (
	"context"
	_ "erdbeergourmet/docs"
	"erdbeergourmet/internal/adapter/http/routes"
	"erdbeergourmet/internal/config"
	"erdbeergourmet/internal/infrastructure/logger"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           ErdbeerGourmet Payments API
// @version         1.0
// @description     Stripe checkout and webhook reconciliation for the ErdbeerGourmet shop and e-book.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(context.Background(), cfg, zl); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}
