package models

import (
	"strings"
	"time"
)

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"items"`
	TotalAmount  int64       `json:"total_amount"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderItem is a copy of the product line taken at checkout. It never points
// back at the catalog.
type OrderItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderInput carries everything checkout captures before an id is minted.
type OrderInput struct {
	CustomerName string      `json:"customer_name"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	Items        []OrderItem `json:"items"`
	TotalAmount  int64       `json:"total_amount"`
}

// SumItems returns Σ price*quantity.
func SumItems(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderShipped, OrderCompleted, OrderCancelled},
	OrderShipped: {OrderCompleted, OrderCancelled},
}

// ParseOrderStatus accepts status names in any letter case.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	return status, status.Valid()
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label is the customer-facing status text.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "در حال بررسی"
	case OrderShipped:
		return "ارسال شد"
	case OrderCompleted:
		return "تحویل شده"
	case OrderCancelled:
		return "لغو شده"
	default:
		return string(s)
	}
}
