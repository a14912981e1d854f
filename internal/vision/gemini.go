package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"menuflow/internal/extraction"
)

type GeminiClient struct {
	apiKey  string
	model   string
	client  *http.Client
	limiter *rate.Limiter
}

func newGeminiClient(cfg Config) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 60 * time.Second},
		limiter: newLimiter(cfg.RequestsPerMinute),
	}
}

// ExtractMenu sends the document inline to Gemini and decodes the
// strict-JSON response.
func (g *GeminiClient) ExtractMenu(
	ctx context.Context,
	doc extraction.Document,
	existing []extraction.ExistingCategoryRef,
) (*extraction.ExtractionResult, error) {

	if len(doc.Data) == 0 {
		return nil, errors.New("empty document")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{
						"inline_data": map[string]string{
							"mime_type": doc.MimeType,
							"data":      base64.StdEncoding.EncodeToString(doc.Data),
						},
					},
					{"text": BuildMenuPrompt(categoryNames(existing))},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 4096,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty gemini response")
	}

	return decodeResult([]byte(result.Candidates[0].Content.Parts[0].Text))
}

func categoryNames(existing []extraction.ExistingCategoryRef) []string {
	names := make([]string, 0, len(existing))
	for _, c := range existing {
		names = append(names, c.Name)
	}
	return names
}

// newLimiter paces outbound calls; rpm <= 0 disables pacing.
func newLimiter(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60), 1)
}
