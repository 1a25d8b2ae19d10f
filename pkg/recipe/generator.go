package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fridgecircle-api/domain"
	"fridgecircle-api/internal/utils"
)

type (
	// Generator produces free-text recipes from on-hand ingredients. Only the
	// first line (the title) of the returned text is reliable; callers must
	// treat any further structure as best-effort.
	Generator interface {
		GenerateRecipe(ctx context.Context, ingredients []IngredientInput) (string, error)
	}

	IngredientInput struct {
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		Name     string `json:"name"`
	}

	geminiGenerator struct {
		client *http.Client
	}
)

func NewGeminiGenerator() Generator {
	return &geminiGenerator{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *geminiGenerator) GenerateRecipe(ctx context.Context, ingredients []IngredientInput) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		parts = append(parts, fmt.Sprintf("%d %s %s", ing.Quantity, ing.Unit, ing.Name))
	}

	prompt := fmt.Sprintf(
		"Create a recipe using some or all of these ingredients: %s. "+
			"The recipe should be practical and easy to make. Include: "+
			"1. Recipe name "+
			"2. Required ingredients (marking which ones are from the available list) "+
			"3. Additional ingredients needed "+
			"4. Step by step instructions "+
			"5. Preparation time "+
			"6. Cooking time "+
			"7. Number of servings. "+
			"Start the response with the recipe name on its own first line.",
		strings.Join(parts, ", "),
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGenerationFailed
	}

	responseText := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)
	if responseText == "" {
		return "", domain.ErrGenerationFailed
	}

	return responseText, nil
}
