package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

type Client struct {
	baseURL    string
	apiKey     string
	successURL string
	cancelURL  string
	http       *http.Client
}

func NewClient(apiKey, baseURL, successURL, cancelURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateCheckoutSession creates one Checkout Session and returns its
// hosted URL. lead_id and mode ride along as metadata so the payment
// webhook can reconcile the completed session against the lead.
func (c *Client) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", input.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(input.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", input.Description)
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("metadata[lead_id]", strconv.Itoa(input.LeadID))
	form.Set("metadata[mode]", input.Mode)

	endpoint := fmt.Sprintf("%s/v1/checkout/sessions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	c.setHeaders(req, input.IdempotencyKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result checkoutSessionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("stripe response decode failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if result.Error != nil {
			return "", fmt.Errorf("stripe error (%s): %s", result.Error.Code, result.Error.Message)
		}
		return "", fmt.Errorf("stripe error (status %d)", resp.StatusCode)
	}

	return result.URL, nil
}

func (c *Client) setHeaders(req *http.Request, idempotencyKey string) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
}
