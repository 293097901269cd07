package routes

import (
	"context"
	_ "erdbeergourmet/docs" // This will be auto-generated
	"erdbeergourmet/internal/adapter/http/handlers"
	"erdbeergourmet/internal/adapter/persistence/memory"
	"erdbeergourmet/internal/adapter/persistence/repository"
	"erdbeergourmet/internal/config"
	"erdbeergourmet/internal/infrastructure/database"
	"erdbeergourmet/internal/infrastructure/mail"
	"erdbeergourmet/internal/infrastructure/payments"
	"erdbeergourmet/internal/infrastructure/tokens"
	"erdbeergourmet/internal/usecase"
	"erdbeergourmet/internal/usecase/interfaces"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Stores groups the persistence ports; both drivers satisfy all three.
type Stores struct {
	Purchases interfaces.IPurchaseRepository
	Customers interfaces.ICustomerRepository
	Events    interfaces.IProcessedEventRepository
}

func MemoryStores(s *memory.Store) Stores {
	return Stores{Purchases: s, Customers: s, Events: s}
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router := NewRouter(cfg, st, newGateway(cfg, logger), logger)
	logger.Info("http server starting", zap.Int("port", cfg.Port), zap.String("store", cfg.StoreDriver))
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// NewRouter builds the engine with every route registered.
func NewRouter(cfg config.Config, st Stores, gateway interfaces.IPaymentGateway, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, st, gateway, logger)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config, st Stores, gateway interfaces.IPaymentGateway, logger *zap.Logger) {
	issuer := tokens.NewRandomIssuer()
	notifier := mail.NewGomailNotifier(mail.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.User,
		Password:    cfg.SMTP.Password,
		From:        cfg.SMTP.From,
		AppURL:      cfg.AppURL,
		AccessPath:  cfg.EbookAccessPath,
		ProductName: cfg.Ebook.Name,
		Timeout:     cfg.SMTP.Timeout,
	}, logger)
	verifier := payments.NewStripeVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance)
	if cfg.Stripe.WebhookSecret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET not set, every webhook delivery will be rejected")
	}

	webhookUseCase := usecase.NewWebhookUseCase(verifier, usecase.NewEventGuard(st.Events), st.Purchases, st.Customers, issuer, notifier, logger)
	ebookUseCase := usecase.NewEbookUseCase(st.Purchases, st.Customers, gateway, issuer, usecase.EbookCatalog{
		Name:        cfg.Ebook.Name,
		Description: cfg.Ebook.Description,
		ImageURL:    cfg.Ebook.ImageURL,
		PriceCents:  cfg.Ebook.PriceCents,
		Currency:    cfg.Ebook.Currency,
		AppURL:      cfg.AppURL,
		SessionTTL:  cfg.Checkout.SessionTTL,
		Source:      cfg.Ebook.Source,
	}, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(gateway, usecase.CartCheckoutSettings{
		AppURL:            cfg.AppURL,
		Currency:          cfg.Checkout.Currency,
		SessionTTL:        cfg.Checkout.SessionTTL,
		ShippingCountries: cfg.Checkout.ShippingCountries,
		Source:            cfg.Checkout.Source,
	}, logger)

	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, logger)
	ebookHandler := handlers.NewEbookHandler(ebookUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	healthHandler := handlers.NewHealthHandler(cfg.AppEnv, cfg.AppVersion)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, healthHandler)
	addWebhookRoutes(v1, webhookHandler)
	addEbookRoutes(v1, ebookHandler)
	addCheckoutRoutes(v1, checkoutHandler)
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (Stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("memory store selected, purchases are lost on restart")
		return MemoryStores(memory.NewStore()), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoConfig{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.Endpoint,
		Timeout:         cfg.AWS.Timeout,
	}, logger)
	if err != nil {
		return Stores{}, fmt.Errorf("connect dynamodb: %w", err)
	}

	tables := repository.TablesFromEnv()
	if cfg.AWS.CreateTables {
		if err := repository.EnsureTables(ctx, ddb, tables, logger); err != nil {
			return Stores{}, fmt.Errorf("ensure tables: %w", err)
		}
	}
	return Stores{
		Purchases: repository.NewPurchaseDynamoRepository(ddb, tables),
		Customers: repository.NewCustomerDynamoRepository(ddb, tables),
		Events:    repository.NewProcessedEventDynamoRepository(ddb, tables),
	}, nil
}

// newGateway returns nil when Stripe is not configured; checkout endpoints
// then answer 503 while webhooks keep working.
func newGateway(cfg config.Config, logger *zap.Logger) interfaces.IPaymentGateway {
	gw, err := payments.NewStripeGateway(payments.StripeGatewayConfig{
		SecretKey: cfg.Stripe.SecretKey,
		Mock:      cfg.Stripe.Mock,
	}, logger)
	if err != nil {
		logger.Warn("payment gateway not configured", zap.Error(err))
		return nil
	}
	return gw
}
