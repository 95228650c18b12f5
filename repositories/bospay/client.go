package bospay

import (
	// Go Internal Packages
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	// Local Packages
	errors "bospay-gateway/errors"

	// External Packages
	"go.uber.org/zap"
)

// Client talks to the BosPay backend API. Every method issues exactly one
// outbound request and normalizes the payload in a single step; caching
// and bounded retry live in CachingClient.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do issues a single request and applies the shared status policy:
// 404 maps to a NotFound error, 401/403 to Unauthorized, any other
// non-2xx to Remote carrying the response body.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.E(errors.Internal, "cannot encode request body", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.E(errors.Internal, "cannot build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observe(op, outcomeNetworkError, time.Since(start))
		return nil, errors.E(errors.Remote, op+" request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		observe(op, outcomeNotFound, time.Since(start))
		return nil, errors.E(errors.NotFound, op+": not found", nil)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		observe(op, outcomeUnauthorized, time.Since(start))
		c.logger.Warn("authentication failed", zap.String("operation", op), zap.Int("status", resp.StatusCode))
		return nil, errors.AuthFailedErr()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(resp.Body)
		observe(op, outcomeRemoteError, time.Since(start))
		c.logger.Error("unexpected upstream status",
			zap.String("operation", op), zap.Int("status", resp.StatusCode))
		return nil, errors.RemoteErr(op, resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(op, outcomeNetworkError, time.Since(start))
		return nil, errors.E(errors.Remote, op+": cannot read response body", err)
	}
	observe(op, outcomeOK, time.Since(start))
	return raw, nil
}
