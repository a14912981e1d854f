package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// HostedCheckout creates payment sessions against the configured
// gateway. The gateway hosts the actual payment page; this client only
// exchanges a session request for a redirect URL.
type HostedCheckout struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewHostedCheckout() *HostedCheckout {
	return &HostedCheckout{
		apiURL: os.Getenv("CHECKOUT_API_URL"),
		apiKey: os.Getenv("CHECKOUT_API_KEY"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (h *HostedCheckout) CreateCheckout(ctx context.Context, restaurantID string, plan Plan) (string, error) {
	if h.apiURL == "" {
		return "", errors.New("CHECKOUT_API_URL not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"reference": restaurantID,
		"plan_id":   plan.ID,
		"amount":    plan.PriceMonthly,
		"currency":  plan.Currency,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.apiURL+"/sessions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("checkout gateway returned %d", resp.StatusCode)
	}

	var out struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.CheckoutURL == "" {
		return "", errors.New("checkout gateway returned no url")
	}
	return out.CheckoutURL, nil
}
