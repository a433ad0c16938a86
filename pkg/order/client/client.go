// Package client submits orders to the order-creation endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"cartflow/pkg/order"
)

// ErrRejected signals that the service refused the order (any non-2xx
// response). Transport failures are returned as-is.
var ErrRejected = errors.New("order rejected")

// Client is a thin adapter over the order-creation endpoint: one POST,
// no retries, no in-flight tracking.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New returns a client targeting the API at baseURL.
func New(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: baseURL, http: http.DefaultClient, log: log}
}

type createRequest struct {
	Items []order.Item `json:"items"`
}

// Submit sends the items as one order. The items go out as-is; the
// server owns validation. A nil error means the order was created.
func (c *Client) Submit(ctx context.Context, items []order.Item) error {
	body, err := json.Marshal(createRequest{Items: items})
	if err != nil {
		return fmt.Errorf("encoding order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order/create", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("order submission failed", zap.Error(err))
		return fmt.Errorf("submitting order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("order rejected", zap.Int("status", resp.StatusCode), zap.ByteString("body", msg))
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}
