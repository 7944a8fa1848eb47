package services

import (
	"errors"
	"fmt"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/idgen"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidProduct = errors.New("invalid product")

// CategoryAll is the filter value that disables category filtering.
const CategoryAll = "ALL"

type ProductFilter struct {
	Category string
	Query    string
}

type CatalogService interface {
	Categories() []string
	ListProducts(filter ProductFilter) []models.Product
	GetProduct(id string) (models.Product, bool)
	SaveProduct(product models.Product) (models.Product, error)
	DeleteProduct(id string) error
}

type catalogService struct {
	products repository.ProductRepository
	ids      idgen.Generator
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, logger *zap.Logger) CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &catalogService{products: products, ids: idgen.NewTimeGenerator(), logger: logger}
}

func (s *catalogService) Categories() []string {
	return models.AllCategories()
}

// ListProducts keeps products in the category whose name contains the query,
// either verbatim or ignoring letter case.
func (s *catalogService) ListProducts(filter ProductFilter) []models.Product {
	category := strings.TrimSpace(filter.Category)
	query := strings.TrimSpace(filter.Query)
	lowerQuery := strings.ToLower(query)

	result := []models.Product{}
	for _, p := range s.products.List() {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(p.Name, query) && !strings.Contains(strings.ToLower(p.Name), lowerQuery) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (s *catalogService) GetProduct(id string) (models.Product, bool) {
	return s.products.GetByID(id)
}

// SaveProduct fills defaults, mints an id for new products and upserts.
func (s *catalogService) SaveProduct(product models.Product) (models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price <= 0 {
		return models.Product{}, fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}
	product.ID = strings.TrimSpace(product.ID)
	if product.ID == "" {
		product.ID = s.nextID()
	}
	product.Category = models.NormalizeCategory(product.Category)
	if strings.TrimSpace(product.Unit) == "" {
		product.Unit = models.DefaultUnit
	}

	if err := s.products.Upsert(product); err != nil {
		return models.Product{}, fmt.Errorf("failed to save product: %w", err)
	}
	s.logger.Info("product saved", zap.String("product_id", product.ID), zap.String("category", product.Category))
	return product, nil
}

// nextID draws ids until one is not already in the catalog.
func (s *catalogService) nextID() string {
	id := s.ids.Next()
	for {
		if _, taken := s.products.GetByID(id); !taken {
			return id
		}
		id = s.ids.Next()
	}
}

func (s *catalogService) DeleteProduct(id string) error {
	if err := s.products.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}
