package services

import (
	"context"
	"errors"
	"storefront/internal/matcher"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/pkg/assistant"
	"storefront/pkg/metrics"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrEmptyDish           = errors.New("dish name is required")
	ErrInvalidDietRequest  = errors.New("height, weight and age must be positive")
	ErrInvalidImageRequest = errors.New("image and instruction are required")
)

// Assistant is the generative backend behind the recipe, diet and image
// features. *assistant.Client implements it.
type Assistant interface {
	Recipe(ctx context.Context, dish string) (*assistant.Recipe, error)
	DietPlan(ctx context.Context, req assistant.DietRequest) (string, error)
	EditImage(ctx context.Context, req assistant.ImageRequest) (string, error)
}

// RecipeSuggestion is a recipe with each ingredient linked to the catalog.
type RecipeSuggestion struct {
	DishName     string           `json:"dish_name"`
	CookingTime  string           `json:"cooking_time"`
	Ingredients  []matcher.Result `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Available    int              `json:"available"`
}

type AssistantService interface {
	SuggestRecipe(ctx context.Context, dish string, availableOnly bool) (*RecipeSuggestion, error)
	DietPlan(ctx context.Context, req assistant.DietRequest) (string, error)
	EditImage(ctx context.Context, req assistant.ImageRequest) (string, error)
}

type assistantService struct {
	ai       Assistant
	products repository.ProductRepository
	timeout  time.Duration
	logger   *zap.Logger
}

func NewAssistantService(ai Assistant, products repository.ProductRepository, timeout time.Duration, logger *zap.Logger) AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &assistantService{ai: ai, products: products, timeout: timeout, logger: logger}
}

// SuggestRecipe fetches a recipe and matches its ingredients against the
// current catalog. With availableOnly, unmatched ingredients are dropped.
func (s *assistantService) SuggestRecipe(ctx context.Context, dish string, availableOnly bool) (*RecipeSuggestion, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return nil, ErrEmptyDish
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	recipe, err := s.ai.Recipe(ctx, dish)
	s.record("recipe", err)
	if err != nil {
		return nil, err
	}

	ingredients := make([]models.Ingredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, models.Ingredient{Name: ing.Name, Amount: ing.Amount})
	}
	results := matcher.MatchAll(ingredients, s.products.List())
	available := matcher.Available(results)
	if availableOnly {
		results = available
	}

	return &RecipeSuggestion{
		DishName:     recipe.DishName,
		CookingTime:  recipe.CookingTime,
		Ingredients:  results,
		Instructions: recipe.Instructions,
		Available:    len(available),
	}, nil
}

func (s *assistantService) DietPlan(ctx context.Context, req assistant.DietRequest) (string, error) {
	if req.Height <= 0 || req.Weight <= 0 || req.Age <= 0 {
		return "", ErrInvalidDietRequest
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	plan, err := s.ai.DietPlan(ctx, req)
	s.record("diet", err)
	return plan, err
}

func (s *assistantService) EditImage(ctx context.Context, req assistant.ImageRequest) (string, error) {
	if len(req.Image) == 0 || strings.TrimSpace(req.Instruction) == "" {
		return "", ErrInvalidImageRequest
	}
	if req.MIMEType == "" {
		req.MIMEType = "image/png"
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	url, err := s.ai.EditImage(ctx, req)
	s.record("image", err)
	return url, err
}

func (s *assistantService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *assistantService) record(kind string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, assistant.ErrCredentials):
		result = "credentials"
	default:
		result = "error"
	}
	metrics.AssistantRequests.WithLabelValues(kind, result).Inc()
	if err != nil {
		s.logger.Warn("assistant request failed", zap.String("kind", kind), zap.Error(err))
	}
}
