package vision

import (
	"context"
	"errors"
	"fmt"

	"menuflow/internal/extraction"
)

// Client is the AI vision-extraction collaborator. Implementations are
// untrusted: any malformed response is an error, never a partial result.
type Client interface {
	ExtractMenu(ctx context.Context, doc extraction.Document, existing []extraction.ExistingCategoryRef) (*extraction.ExtractionResult, error)
}

// Config selects and credentials a provider. It is passed in explicitly
// per client so tenants and documents never share process-wide state.
type Config struct {
	Provider          string // "gemini" or "huggingface"
	APIKey            string
	Model             string
	RequestsPerMinute int // pacing for sequential calls; 0 means unpaced
}

// NewClient builds the provider-specific client for cfg.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing vision api key")
	}
	if cfg.Model == "" {
		return nil, errors.New("missing vision model")
	}

	switch cfg.Provider {
	case "gemini":
		return newGeminiClient(cfg), nil
	case "huggingface":
		return newHuggingFaceClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown vision provider: %q", cfg.Provider)
	}
}
