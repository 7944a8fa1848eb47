package handlers

import (
	"net/http"
	"storefront/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Catalog   *CatalogHandler
	Orders    *OrderHandler
	Carts     *CartHandler
	Assistant *AssistantHandler
	Admin     *AdminGate
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/categories", h.Catalog.ListCategories)
		api.GET("/products", h.Catalog.ListProducts)
		api.GET("/products/:id", h.Catalog.GetProduct)
		api.GET("/orders/:id", h.Orders.TrackOrder)

		api.POST("/carts", h.Carts.CreateCart)
		api.GET("/carts/:cart_id", h.Carts.GetCart)
		api.DELETE("/carts/:cart_id", h.Carts.ClearCart)
		api.POST("/carts/:cart_id/items", h.Carts.AddItem)
		api.PATCH("/carts/:cart_id/items/:product_id", h.Carts.AdjustItem)
		api.DELETE("/carts/:cart_id/items/:product_id", h.Carts.RemoveItem)
		api.POST("/carts/:cart_id/checkout", h.Carts.Checkout)

		api.POST("/assistant/recipe", h.Assistant.SuggestRecipe)
		api.POST("/assistant/diet", h.Assistant.DietPlan)
		api.POST("/assistant/image", h.Assistant.EditImage)
	}

	admin := api.Group("/admin")
	admin.POST("/login", h.Admin.Login)

	protected := admin.Group("")
	protected.Use(h.Admin.Middleware())
	{
		protected.GET("/orders", h.Orders.ListOrders)
		protected.PUT("/orders/:id/status", h.Orders.UpdateOrderStatus)
		protected.PUT("/products", h.Catalog.SaveProduct)
		protected.DELETE("/products/:id", h.Catalog.DeleteProduct)
	}

	return router
}
