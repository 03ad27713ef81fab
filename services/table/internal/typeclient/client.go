package typeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// TableType mirrors the table-type service payload. Only the fields the
// table service needs are decoded.
type TableType struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ErrNotFound is returned when the table-type service has no live row
// for the requested id.
var ErrNotFound = fmt.Errorf("table type not found")

// Client fetches table types from the table-type service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(tableTypeServiceURL string) *Client {
	return &Client{
		baseURL: tableTypeServiceURL,
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

type tableTypeResponse struct {
	Message string    `json:"message"`
	Data    TableType `json:"data"`
}

// GetByID looks up a single table type by id.
func (c *Client) GetByID(ctx context.Context, id uint) (*TableType, error) {
	url := c.baseURL + "/table-type/" + strconv.FormatUint(uint64(id), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("table-type lookup failed with status: %d", resp.StatusCode)
	}

	var result tableTypeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result.Data, nil
}
