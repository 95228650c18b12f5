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

const opListProducts = "list-products"

// ListProducts fetches the merchant's product inventory.
func (c *Client) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	raw, err := c.do(ctx, opListProducts, http.MethodGet, "/api/products", nil, token, nil)
	if errors.Is(errors.NotFound, err) {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, err
	}

	var env productListEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.E(errors.Remote, "malformed product list response", err)
	}
	if env.Products == nil {
		return []models.Product{}, nil
	}
	return env.Products, nil
}
