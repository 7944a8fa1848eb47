package handlers

import (
	"errors"
	"net/http"
	"storefront/internal/services"
	"storefront/pkg/assistant"

	"github.com/gin-gonic/gin"
)

const (
	msgCredentials  = "کلید API سرویس هوش مصنوعی تنظیم نشده یا نامعتبر است."
	msgAIFailed     = "متاسفانه مشکلی پیش آمد. لطفا دوباره تلاش کنید."
	msgOrderMissing = "سفارشی با این کد یافت نشد."
)

// respondError maps service and assistant errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProduct),
		errors.Is(err, services.ErrInvalidCustomer),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrEmptyDish),
		errors.Is(err, services.ErrInvalidDietRequest),
		errors.Is(err, services.ErrInvalidImageRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, assistant.ErrCredentials):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgCredentials})
	case errors.Is(err, assistant.ErrService):
		c.JSON(http.StatusBadGateway, gin.H{"error": msgAIFailed})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
