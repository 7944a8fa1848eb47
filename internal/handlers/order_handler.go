package handlers

import (
	"net/http"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders services.OrderService
}

func NewOrderHandler(orders services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// TrackOrder is the public lookup by order id.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	order, ok := h.orders.GetOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgOrderMissing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "status_label": order.Status.Label()})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.orders.ListOrders()
	c.JSON(http.StatusOK, gin.H{
		"orders":  orders,
		"count":   len(orders),
		"pending": h.orders.PendingCount(),
	})
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	status, ok := models.ParseOrderStatus(req.Status)
	if !ok {
		respondError(c, services.ErrInvalidStatus)
		return
	}

	order, found, err := h.orders.UpdateStatus(c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": msgOrderMissing})
		return
	}
	c.JSON(http.StatusOK, order)
}
