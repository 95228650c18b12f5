package bospay

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
)

const opGetBalance = "get-balance"

// GetBalance fetches the merchant's current and previous balance.
func (c *Client) GetBalance(ctx context.Context, token string) (*models.Balance, error) {
	raw, err := c.do(ctx, opGetBalance, http.MethodGet, "/api/balance", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var balance models.Balance
	if err := json.Unmarshal(raw, &balance); err != nil {
		return nil, errors.E(errors.Remote, "malformed balance response", err)
	}
	return &balance, nil
}
