package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tuanle-dev/table-management/pkg/authz"
)

// Client asks the auth-service for an authorization decision. It
// implements authz.Decider, so a gateway filter can swap between this
// and the in-process service without behavioral difference.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(authServiceURL string) *Client {
	return &Client{
		baseURL: authServiceURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type authRequest struct {
	Token         string `json:"token"`
	URLRequest    string `json:"urlRequest"`
	MethodRequest string `json:"methodRequest"`
}

type authResponse struct {
	Message string         `json:"message"`
	Data    authz.Decision `json:"data"`
}

// Authorize posts the request triple to the auth-service oracle.
func (c *Client) Authorize(ctx context.Context, token, method, path string) (authz.Decision, error) {
	body, err := json.Marshal(authRequest{Token: token, URLRequest: path, MethodRequest: method})
	if err != nil {
		return authz.Decision{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/authentication", bytes.NewReader(body))
	if err != nil {
		return authz.Decision{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return authz.Decision{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return authz.Decision{}, fmt.Errorf("authentication failed with status: %d", resp.StatusCode)
	}

	var result authResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return authz.Decision{}, fmt.Errorf("decode response: %w", err)
	}
	return result.Data, nil
}
