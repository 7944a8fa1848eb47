package handlers

import (
	"encoding/base64"
	"net/http"
	"storefront/internal/services"
	"storefront/pkg/assistant"
	"strings"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant services.AssistantService
}

func NewAssistantHandler(assistant services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

func (h *AssistantHandler) SuggestRecipe(c *gin.Context) {
	var req struct {
		Dish          string `json:"dish"`
		AvailableOnly bool   `json:"available_only"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	suggestion, err := h.assistant.SuggestRecipe(c.Request.Context(), req.Dish, req.AvailableOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (h *AssistantHandler) DietPlan(c *gin.Context) {
	var req assistant.DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	plan, err := h.assistant.DietPlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// EditImage accepts the image as plain base64 or as a data URL.
func (h *AssistantHandler) EditImage(c *gin.Context) {
	var req struct {
		Image       string `json:"image" binding:"required"`
		MIMEType    string `json:"mime_type"`
		Instruction string `json:"instruction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	encoded, mimeType := splitDataURL(req.Image)
	if req.MIMEType != "" {
		mimeType = req.MIMEType
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be base64 encoded"})
		return
	}

	url, err := h.assistant.EditImage(c.Request.Context(), assistant.ImageRequest{
		Image:       data,
		MIMEType:    mimeType,
		Instruction: req.Instruction,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": url})
}

func splitDataURL(s string) (data, mimeType string) {
	if !strings.HasPrefix(s, "data:") {
		return s, ""
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return s, ""
	}
	return payload, strings.TrimSuffix(meta, ";base64")
}
