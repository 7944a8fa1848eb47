package services

import (
	"errors"
	"fmt"
	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/metrics"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)

// Customer holds the details collected at checkout.
type Customer struct {
	Name    string `json:"customer_name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CartService interface {
	NewCart() (string, *cart.Cart, error)
	GetCart(cartID string) (*cart.Cart, error)
	AddProduct(cartID, productID string) (*cart.Cart, error)
	AdjustQuantity(cartID, productID string, delta int) (*cart.Cart, error)
	RemoveProduct(cartID, productID string) (*cart.Cart, error)
	ClearCart(cartID string) error
	Checkout(cartID string, customer Customer) (*models.Order, error)
}

type cartService struct {
	mu       sync.Mutex
	carts    CartStore
	products repository.ProductRepository
	orders   OrderService
	logger   *zap.Logger
}

func NewCartService(carts CartStore, products repository.ProductRepository, orders OrderService, logger *zap.Logger) CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cartService{carts: carts, products: products, orders: orders, logger: logger}
}

func (s *cartService) NewCart() (string, *cart.Cart, error) {
	cartID := uuid.NewString()
	c := cart.New()
	if err := s.carts.SaveCart(cartID, c.Items()); err != nil {
		return "", nil, fmt.Errorf("failed to create cart: %w", err)
	}
	metrics.CartOperations.WithLabelValues("create").Inc()
	return cartID, c, nil
}

func (s *cartService) GetCart(cartID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(cartID)
}

// AddProduct adds one unit of a catalog product. The cart keeps the product
// as it was at this moment.
func (s *cartService) AddProduct(cartID, productID string) (*cart.Cart, error) {
	product, ok := s.products.GetByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	return s.mutate(cartID, "add", func(c *cart.Cart) { c.Add(product) })
}

func (s *cartService) AdjustQuantity(cartID, productID string, delta int) (*cart.Cart, error) {
	return s.mutate(cartID, "adjust", func(c *cart.Cart) { c.AdjustQuantity(productID, delta) })
}

func (s *cartService) RemoveProduct(cartID, productID string) (*cart.Cart, error) {
	return s.mutate(cartID, "remove", func(c *cart.Cart) { c.Remove(productID) })
}

func (s *cartService) ClearCart(cartID string) error {
	_, err := s.mutate(cartID, "clear", func(c *cart.Cart) { c.Clear() })
	return err
}

// Checkout turns the cart into an order and empties it. The cart is left
// untouched when the order is rejected.
func (s *cartService) Checkout(cartID string, customer Customer) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(cartID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order, err := s.orders.PlaceOrder(models.OrderInput{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Address:      customer.Address,
		Items:        c.OrderItems(),
		TotalAmount:  c.TotalAmount(),
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	if err := s.carts.SaveCart(cartID, c.Items()); err != nil {
		s.logger.Warn("failed to clear cart after checkout", zap.String("cart_id", cartID), zap.Error(err))
	}
	metrics.CartOperations.WithLabelValues("checkout").Inc()
	return order, nil
}

func (s *cartService) mutate(cartID, op string, apply func(*cart.Cart)) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(cartID)
	if err != nil {
		return nil, err
	}
	apply(c)
	if err := s.carts.SaveCart(cartID, c.Items()); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	metrics.CartOperations.WithLabelValues(op).Inc()
	return c, nil
}

func (s *cartService) load(cartID string) (*cart.Cart, error) {
	items, found, err := s.carts.LoadCart(cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if !found {
		return nil, ErrCartNotFound
	}
	return cart.New(items...), nil
}
