// Package apiclient is the bot's HTTP client for the storefront REST API.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/dto"
	"storefront/internal/domain/model"
)

// catalogLimit is the largest page the API serves.
const catalogLimit = dto.MaxLimit

type Client struct {
	http    *http.Client
	baseURL string
}

func New(cfg Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Millisecond},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Products returns the available catalog in API order.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	query := url.Values{}
	query.Set("status", string(model.ProductAvailable))
	query.Set("limit", strconv.Itoa(catalogLimit))
	query.Set("sortBy", "name")
	query.Set("sortOrder", string(dto.SortAsc))

	var page dto.Page[model.Product]
	if err := c.do(ctx, http.MethodGet, "/api/products?"+query.Encode(), nil, &page); err != nil {
		return nil, err
	}

	return page.Items, nil
}

func (c *Client) CreateOrder(ctx context.Context, in dto.OrderInput) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", in, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperror.Upstream("invalid api request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.Upstream("api unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		return apperror.Upstream("api request failed",
			fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Upstream("invalid api response", err)
	}

	return nil
}
