package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/pennywise/internal/model"
)

// geminiClient implements the Client interface for the Gemini API, the
// provider the original advisor shipped with.
type geminiClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	m := cfg.Model
	if m == "" {
		m = "gemini-2.0-flash"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		model:       m,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// insightSchema constrains the Gemini response to the exact insight shape.
var insightSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"analysis": map[string]any{
			"type":        "STRING",
			"description": "Detailed analysis of the current financial situation",
		},
		"suggestions": map[string]any{
			"type":        "ARRAY",
			"items":       map[string]any{"type": "STRING"},
			"description": "List of actionable improvements",
		},
		"savingTips": map[string]any{
			"type":        "STRING",
			"description": "A specific tip for saving money this month",
		},
	},
	"required": []string{"analysis", "suggestions", "savingTips"},
}

// Advise sends the snapshot to Gemini and parses the constrained reply.
func (c *geminiClient) Advise(ctx context.Context, txns []model.Transaction, language string) (model.Insight, error) {
	prompt, err := userPrompt(txns)
	if err != nil {
		return model.Insight{}, err
	}

	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": prompt}},
			},
		},
		"systemInstruction": map[string]any{
			"parts": []map[string]string{{"text": systemPrompt(language)}},
		},
		"generationConfig": map[string]any{
			"temperature":      c.temperature,
			"maxOutputTokens":  c.maxTokens,
			"responseMimeType": "application/json",
			"responseSchema":   insightSchema,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return model.Insight{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(jsonBody)))
	if err != nil {
		return model.Insight{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Insight{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Insight{}, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.Insight{}, fmt.Errorf("%w: gemini API error (status %d): %s", ErrTransport, resp.StatusCode, string(body))
	}

	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return model.Insight{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return model.Insight{}, fmt.Errorf("%w: no content in response", ErrParse)
	}

	return parseInsight(response.Candidates[0].Content.Parts[0].Text)
}

// geminiResponse represents the Gemini API response structure.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
			Role string `json:"role"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}
