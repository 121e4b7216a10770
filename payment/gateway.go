package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// InitiateRequest is the signed transaction handed to the gateway.
type InitiateRequest struct {
	OrderID   string
	Body      map[string]any
	Signature string
}

// Gateway forwards transaction requests to the payment provider.
type Gateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (map[string]any, error)
}

// HTTPGateway talks to the provider's initiateTransaction endpoint over
// HTTPS. Protocol details beyond the JSON envelope stay with the provider.
type HTTPGateway struct {
	baseURL    string
	merchantID string
	client     *http.Client
}

func NewHTTPGateway(baseURL, merchantID string) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    baseURL,
		merchantID: merchantID,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *HTTPGateway) Initiate(ctx context.Context, req InitiateRequest) (map[string]any, error) {
	envelope := map[string]any{
		"body": req.Body,
		"head": map[string]string{"signature": req.Signature},
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/theia/api/v1/initiateTransaction?mid=%s&orderId=%s",
		g.baseURL, url.QueryEscape(g.merchantID), url.QueryEscape(req.OrderID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var response map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	return response, nil
}
