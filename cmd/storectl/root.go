package main

import (
	"storefront/internal/bootstrap"
	"storefront/internal/config"
	"storefront/internal/logging"
	"storefront/internal/repository"
	"storefront/internal/services"
	"storefront/pkg/idgen"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the storage and services one command runs against.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	res      *bootstrap.Resources
	products repository.ProductRepository
	catalog  services.CatalogService
	orders   services.OrderService
}

func (a *app) Close() {
	a.res.Close()
	a.logger.Sync()
}

// boot loads config from the environment and opens the configured store.
// Customer notifications are left to the server.
func boot() (*app, error) {
	cfg := config.Load()
	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	res, err := bootstrap.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	products := repository.NewProductRepository(res.Store)
	orderRepo := repository.NewOrderRepository(res.Store, idgen.New(cfg.OrderIDScheme))
	return &app{
		cfg:      cfg,
		logger:   logger,
		res:      res,
		products: products,
		catalog:  services.NewCatalogService(products, logger),
		orders:   services.NewOrderService(orderRepo, nil, logger),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Operate the storefront store from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(productsCmd())
	root.AddCommand(ordersCmd())
	return root
}
