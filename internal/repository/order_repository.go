package repository

import (
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/pkg/idgen"
	"sync"
	"time"
)

// OrderRepository stores orders as an append-only history. Status is the
// only field that changes after creation.
type OrderRepository interface {
	Create(input models.OrderInput) (*models.Order, error)
	GetByID(id string) (*models.Order, bool)
	GetAll() []models.Order
	UpdateStatus(id string, status models.OrderStatus) error
}

type orderRepository struct {
	mu    sync.Mutex
	store *store.Store
	ids   idgen.Generator
	now   func() time.Time
}

func NewOrderRepository(s *store.Store, ids idgen.Generator) OrderRepository {
	return &orderRepository{store: s, ids: ids, now: time.Now}
}

// Create mints an id that no stored order uses, stamps the creation time and
// persists the order as PENDING.
func (r *orderRepository) Create(input models.OrderInput) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, _ := store.ReadAll[models.Order](r.store, store.Orders)
	taken := make(map[string]bool, len(orders))
	for _, o := range orders {
		taken[o.ID] = true
	}
	id := r.ids.Next()
	for taken[id] {
		id = r.ids.Next()
	}

	order := models.Order{
		ID:           id,
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Address:      input.Address,
		Items:        append([]models.OrderItem(nil), input.Items...),
		TotalAmount:  input.TotalAmount,
		Status:       models.OrderPending,
		CreatedAt:    r.now(),
	}
	if err := store.WriteAll(r.store, store.Orders, append(orders, order)); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID is an exact, case-sensitive lookup.
func (r *orderRepository) GetByID(id string) (*models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, _ := store.ReadAll[models.Order](r.store, store.Orders)
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], true
		}
	}
	return nil, false
}

// GetAll returns orders in stored order.
func (r *orderRepository) GetAll() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, _ := store.ReadAll[models.Order](r.store, store.Orders)
	return orders
}

// UpdateStatus overwrites the status of the matching order. It does not
// check the transition; unknown ids are ignored.
func (r *orderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, _ := store.ReadAll[models.Order](r.store, store.Orders)
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return store.WriteAll(r.store, store.Orders, orders)
		}
	}
	return nil
}
