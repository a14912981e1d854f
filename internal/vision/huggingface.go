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

// HuggingFaceClient talks to the HF router's OpenAI-compatible chat
// endpoint with a vision-capable model.
type HuggingFaceClient struct {
	token   string
	model   string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func newHuggingFaceClient(cfg Config) *HuggingFaceClient {
	return &HuggingFaceClient{
		token:   cfg.APIKey,
		model:   cfg.Model,
		baseURL: "https://router.huggingface.co/v1/chat/completions",
		client:  &http.Client{Timeout: 60 * time.Second},
		limiter: newLimiter(cfg.RequestsPerMinute),
	}
}

func (c *HuggingFaceClient) ExtractMenu(
	ctx context.Context,
	doc extraction.Document,
	existing []extraction.ExistingCategoryRef,
) (*extraction.ExtractionResult, error) {

	if len(doc.Data) == 0 {
		return nil, errors.New("empty document")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	dataURL := fmt.Sprintf(
		"data:%s;base64,%s",
		doc.MimeType,
		base64.StdEncoding.EncodeToString(doc.Data),
	)

	payload, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": BuildMenuPrompt(categoryNames(existing))},
					{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
				},
			},
		},
		"max_tokens":  4096,
		"temperature": 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HF request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HF API returned status %d: %s", resp.StatusCode, string(body))
	}

	var hfResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return nil, fmt.Errorf("failed to parse HF response: %w", err)
	}
	if len(hfResp.Choices) == 0 {
		return nil, errors.New("empty HF response")
	}

	return decodeResult([]byte(hfResp.Choices[0].Message.Content))
}
