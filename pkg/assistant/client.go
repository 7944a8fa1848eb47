// Package assistant wraps the Gemini API for the storefront's recipe, diet
// plan and product image features.
//
// Every failure is reported as one of two sentinels so callers can show the
// right message: ErrCredentials when the API key is missing or rejected,
// ErrService for anything else.
package assistant

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	ErrCredentials = errors.New("assistant: API key is missing or invalid")
	ErrService     = errors.New("assistant: request failed")
)

type Recipe struct {
	DishName     string       `json:"dishName"`
	CookingTime  string       `json:"cookingTime"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type DietRequest struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
}

type ImageRequest struct {
	Image       []byte
	MIMEType    string
	Instruction string
}

// generator is the subset of genai.Models the client calls.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Options struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type Client struct {
	models     generator
	textModel  string
	imageModel string
}

// NewClient connects to the Gemini API. Without an API key the client is
// still returned, and every call fails with ErrCredentials.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	c := &Client{textModel: opts.TextModel, imageModel: opts.ImageModel}
	if c.textModel == "" {
		c.textModel = "gemini-2.5-flash"
	}
	if c.imageModel == "" {
		c.imageModel = "gemini-2.5-flash-image"
	}
	if opts.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

var recipeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"dishName":    {Type: genai.TypeString},
		"cookingTime": {Type: genai.TypeString},
		"ingredients": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":   {Type: genai.TypeString},
					"amount": {Type: genai.TypeString},
				},
				Required: []string{"name", "amount"},
			},
		},
		"instructions": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"dishName", "cookingTime", "ingredients", "instructions"},
}

// Recipe asks for a structured recipe for dish.
func (c *Client) Recipe(ctx context.Context, dish string) (*Recipe, error) {
	prompt := fmt.Sprintf(
		"دستور پخت کامل «%s» را به زبان فارسی بده. نام مواد اولیه را ساده و بدون توضیح اضافه بنویس تا بتوان آن‌ها را در فروشگاه پیدا کرد.",
		dish,
	)
	resp, err := c.generate(ctx, c.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recipeSchema,
	})
	if err != nil {
		return nil, err
	}

	var recipe Recipe
	if err := json.Unmarshal([]byte(resp.Text()), &recipe); err != nil {
		return nil, fmt.Errorf("%w: malformed recipe: %v", ErrService, err)
	}
	return &recipe, nil
}

// DietPlan returns a free-text plan for the given body measurements.
func (c *Client) DietPlan(ctx context.Context, req DietRequest) (string, error) {
	prompt := fmt.Sprintf(
		"یک برنامه غذایی روزانه سالم به زبان فارسی برای فردی با قد %.0f سانتی‌متر، وزن %.0f کیلوگرم، سن %d سال و جنسیت %s پیشنهاد بده. شامل صبحانه، ناهار، شام و میان‌وعده باشد.",
		req.Height, req.Weight, req.Age, req.Gender,
	)
	resp, err := c.generate(ctx, c.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	plan := strings.TrimSpace(resp.Text())
	if plan == "" {
		return "", fmt.Errorf("%w: empty diet plan", ErrService)
	}
	return plan, nil
}

// EditImage applies instruction to the image and returns the result as a
// data URL.
func (c *Client) EditImage(ctx context.Context, req ImageRequest) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(req.Image, req.MIMEType),
			genai.NewPartFromText(req.Instruction),
		}, genai.RoleUser),
	}
	resp, err := c.generate(ctx, c.imageModel, contents, nil)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return "data:" + part.InlineData.MIMEType + ";base64," +
					base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("%w: no image in response", ErrService)
}

func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if c.models == nil {
		return nil, ErrCredentials
	}
	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

var credentialMarkers = []string{
	"api key not valid",
	"api_key_invalid",
	"api key is missing",
	"permission_denied",
	"unauthenticated",
	"error 401",
	"error 403",
}

func classify(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range credentialMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrCredentials, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrService, err)
}
