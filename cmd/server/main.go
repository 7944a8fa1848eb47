package main

import (
	"context"
	"log"
	"storefront/internal/bootstrap"
	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/logging"
	"storefront/internal/migrations"
	"storefront/internal/repository"
	"storefront/internal/services"
	"storefront/pkg/assistant"
	"storefront/pkg/idgen"
	"storefront/pkg/whatsapp"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize storage
	res, err := bootstrap.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer res.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(res.Store)
	orderRepo := repository.NewOrderRepository(res.Store, idgen.New(cfg.OrderIDScheme))

	if err := migrations.SeedCatalog(productRepo, logger); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// Initialize external clients
	var notifier services.OrderNotifier
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
	if whatsappClient.Enabled() {
		notifier = whatsappClient
	} else {
		logger.Info("WhatsApp gateway not configured, order notifications disabled")
	}

	aiClient, err := assistant.NewClient(context.Background(), assistant.Options{
		APIKey:     cfg.GenAIAPIKey,
		TextModel:  cfg.GenAITextModel,
		ImageModel: cfg.GenAIImageModel,
	})
	if err != nil {
		logger.Fatal("Failed to create assistant client", zap.Error(err))
	}
	if cfg.GenAIAPIKey == "" {
		logger.Warn("GENAI_API_KEY is not set, assistant features will report missing credentials")
	}

	// Initialize services
	catalogService := services.NewCatalogService(productRepo, logger)
	orderService := services.NewOrderService(orderRepo, notifier, logger)
	cartService := services.NewCartService(res.Carts, productRepo, orderService, logger)
	assistantService := services.NewAssistantService(aiClient, productRepo, time.Duration(cfg.AITimeout)*time.Second, logger)

	// Initialize handlers
	adminGate, err := handlers.NewAdminGate(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("Failed to configure admin gate", zap.Error(err))
	}

	router := handlers.NewRouter(handlers.Handlers{
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Orders:    handlers.NewOrderHandler(orderService),
		Carts:     handlers.NewCartHandler(cartService),
		Assistant: handlers.NewAssistantHandler(assistantService),
		Admin:     adminGate,
	})

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("store", cfg.StoreDriver))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
