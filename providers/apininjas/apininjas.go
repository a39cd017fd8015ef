package apininjas

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/providers/base"
)

const DefaultBaseURL = "https://api.api-ninjas.com"

// Client talks to the API Ninjas nutrition and recipe endpoints.
type Client struct {
	*base.BaseClient
	baseURL string
	apiKey  string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseClient: base.NewBaseClient(timeout),
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
	}
}

// WithBaseURL points the client at another host.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

func (c *Client) Name() string { return "apininjas" }

func (c *Client) headers() map[string]string {
	return map[string]string{"X-Api-Key": c.apiKey}
}

// Lookup returns the nutrition facts of the first item API Ninjas matches for food.
func (c *Client) Lookup(ctx context.Context, food string) (*models.NutritionInfo, error) {
	query := strings.TrimSpace(food)
	if query == "" {
		return nil, base.ErrMissingQuery
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API Ninjas key", base.ErrMissingCredentials)
	}

	var items []map[string]any
	endpoint := c.baseURL + "/v1/nutrition?query=" + url.QueryEscape(query)
	if err := c.GetJSON(ctx, endpoint, c.headers(), &items); err != nil {
		return nil, fmt.Errorf("api ninjas nutrition: %w", err)
	}
	if len(items) == 0 {
		return &models.NutritionInfo{}, nil
	}

	item := items[0]
	return &models.NutritionInfo{
		Calories: base.Number(item, "calories"),
		ProteinG: base.Number(item, "protein_g"),
		FatG:     base.Number(item, "fat_total_g"),
		CarbsG:   base.Number(item, "carbohydrates_total_g", "carbohydrate_total_g"),
		Raw:      item,
	}, nil
}

type recipeItem struct {
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Servings     string `json:"servings"`
	Instructions string `json:"instructions"`
}

// SearchRecipes returns the recipes API Ninjas finds for a keyword or ingredient.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, base.ErrMissingQuery
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API Ninjas key", base.ErrMissingCredentials)
	}

	var items []recipeItem
	endpoint := c.baseURL + "/v1/recipe?query=" + url.QueryEscape(q)
	if err := c.GetJSON(ctx, endpoint, c.headers(), &items); err != nil {
		return nil, fmt.Errorf("api ninjas recipes: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(items))
	for _, it := range items {
		recipes = append(recipes, models.Recipe(it))
	}
	return recipes, nil
}
