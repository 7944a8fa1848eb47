package handlers

import (
	"net/http"
	"storefront/internal/cart"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts services.CartService
}

func NewCartHandler(carts services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartResponse struct {
	CartID      string      `json:"cart_id"`
	Items       []cart.Item `json:"items"`
	TotalAmount int64       `json:"total_amount"`
	TotalItems  int         `json:"total_items"`
}

func renderCart(c *gin.Context, status int, cartID string, crt *cart.Cart) {
	c.JSON(status, cartResponse{
		CartID:      cartID,
		Items:       crt.Items(),
		TotalAmount: crt.TotalAmount(),
		TotalItems:  crt.TotalItems(),
	})
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	cartID, crt, err := h.carts.NewCart()
	if err != nil {
		respondError(c, err)
		return
	}
	renderCart(c, http.StatusCreated, cartID, crt)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := c.Param("cart_id")
	crt, err := h.carts.GetCart(cartID)
	if err != nil {
		respondError(c, err)
		return
	}
	renderCart(c, http.StatusOK, cartID, crt)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cartID := c.Param("cart_id")
	crt, err := h.carts.AddProduct(cartID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	renderCart(c, http.StatusOK, cartID, crt)
}

func (h *CartHandler) AdjustItem(c *gin.Context) {
	// A zero delta is a valid no-op, so only an absent field is rejected.
	var req struct {
		Delta *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Delta == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	cartID := c.Param("cart_id")
	crt, err := h.carts.AdjustQuantity(cartID, c.Param("product_id"), *req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	renderCart(c, http.StatusOK, cartID, crt)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := c.Param("cart_id")
	crt, err := h.carts.RemoveProduct(cartID, c.Param("product_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	renderCart(c, http.StatusOK, cartID, crt)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID := c.Param("cart_id")
	if err := h.carts.ClearCart(cartID); err != nil {
		respondError(c, err)
		return
	}
	renderCart(c, http.StatusOK, cartID, cart.New())
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var customer services.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.carts.Checkout(c.Param("cart_id"), customer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
