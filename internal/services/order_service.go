package services

import (
	"errors"
	"fmt"
	"sort"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/metrics"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidCustomer   = errors.New("customer name, phone and address are required")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
)

// OrderNotifier tells a customer about a new or updated order.
type OrderNotifier interface {
	NotifyOrder(order models.Order) error
}

type OrderService interface {
	PlaceOrder(input models.OrderInput) (*models.Order, error)
	GetOrder(id string) (*models.Order, bool)
	ListOrders() []models.Order
	PendingCount() int
	UpdateStatus(id string, status models.OrderStatus) (*models.Order, bool, error)
}

type orderService struct {
	// mu serialises status changes so the transition check and the write
	// see the same stored status.
	mu       sync.Mutex
	orders   repository.OrderRepository
	notifier OrderNotifier
	logger   *zap.Logger
}

// NewOrderService wires the order workflow. notifier may be nil.
func NewOrderService(orders repository.OrderRepository, notifier OrderNotifier, logger *zap.Logger) OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &orderService{orders: orders, notifier: notifier, logger: logger}
}

// PlaceOrder validates the customer details and persists the order. The
// total is always recomputed from the items.
func (s *orderService) PlaceOrder(input models.OrderInput) (*models.Order, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	if input.CustomerName == "" || input.Phone == "" || input.Address == "" {
		return nil, ErrInvalidCustomer
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	input.TotalAmount = models.SumItems(input.Items)

	order, err := s.orders.Create(input)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersCreated.Inc()
	metrics.OrderRevenue.Add(float64(order.TotalAmount))
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Items)),
		zap.Int64("total_amount", order.TotalAmount),
	)
	s.notify(*order)
	return order, nil
}

// GetOrder looks the id up exactly as given.
func (s *orderService) GetOrder(id string) (*models.Order, bool) {
	return s.orders.GetByID(id)
}

// ListOrders returns every order, newest first. Orders created in the same
// instant keep reverse insertion order.
func (s *orderService) ListOrders() []models.Order {
	stored := s.orders.GetAll()
	orders := make([]models.Order, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		orders = append(orders, stored[i])
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func (s *orderService) PendingCount() int {
	count := 0
	for _, o := range s.orders.GetAll() {
		if o.Status == models.OrderPending {
			count++
		}
	}
	return count
}

// UpdateStatus moves the order to status. Setting the current status again
// is a no-op; any other move must be an allowed transition.
func (s *orderService) UpdateStatus(id string, status models.OrderStatus) (*models.Order, bool, error) {
	if !status.Valid() {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, found := s.orders.GetByID(id)
	if !found {
		return nil, false, nil
	}

	from := order.Status
	if from == status {
		return order, true, nil
	}
	if !from.CanTransitionTo(status) {
		metrics.StatusTransitions.WithLabelValues(string(from), string(status), "rejected").Inc()
		return order, true, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, status)
	}

	if err := s.orders.UpdateStatus(id, status); err != nil {
		metrics.StatusTransitions.WithLabelValues(string(from), string(status), "error").Inc()
		return nil, true, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = status

	metrics.StatusTransitions.WithLabelValues(string(from), string(status), "applied").Inc()
	s.logger.Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(status)),
	)
	s.notify(*order)
	return order, true, nil
}

func (s *orderService) notify(order models.Order) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.NotifyOrder(order); err != nil {
			s.logger.Warn("order notification failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}()
}
