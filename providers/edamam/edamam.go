package edamam

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/providers/base"
)

const DefaultBaseURL = "https://api.edamam.com"

// Client queries the Edamam Nutrition Data API.
type Client struct {
	*base.BaseClient
	baseURL string
	appID   string
	appKey  string
}

func NewClient(appID, appKey string, timeout time.Duration) *Client {
	return &Client{
		BaseClient: base.NewBaseClient(timeout),
		baseURL:    DefaultBaseURL,
		appID:      appID,
		appKey:     appKey,
	}
}

func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

func (c *Client) Name() string { return "edamam" }

type nutrient struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type nutritionData struct {
	Calories       float64             `json:"calories"`
	TotalNutrients map[string]nutrient `json:"totalNutrients"`
}

// Lookup analyses a free-text ingredient line such as "1 apple" or "banana 100g".
func (c *Client) Lookup(ctx context.Context, food string) (*models.NutritionInfo, error) {
	query := strings.TrimSpace(food)
	if query == "" {
		return nil, base.ErrMissingQuery
	}
	if c.appID == "" || c.appKey == "" {
		return nil, fmt.Errorf("%w: Edamam appId/appKey", base.ErrMissingCredentials)
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("ingr", query)

	var data nutritionData
	if err := c.GetJSON(ctx, c.baseURL+"/api/nutrition-data?"+params.Encode(), nil, &data); err != nil {
		return nil, fmt.Errorf("edamam nutrition: %w", err)
	}

	calories := data.TotalNutrients["ENERC_KCAL"].Quantity
	if calories == 0 {
		calories = data.Calories
	}

	raw := make(map[string]any, len(data.TotalNutrients)+1)
	raw["calories"] = data.Calories
	for code, n := range data.TotalNutrients {
		raw[code] = n.Quantity
	}

	return &models.NutritionInfo{
		Calories: calories,
		ProteinG: data.TotalNutrients["PROCNT"].Quantity,
		FatG:     data.TotalNutrients["FAT"].Quantity,
		CarbsG:   data.TotalNutrients["CHOCDF"].Quantity,
		Raw:      raw,
	}, nil
}
