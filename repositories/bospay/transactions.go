package bospay

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"

	// External Packages
	"go.uber.org/zap"
)

const (
	opListConfirmed = "list-confirmed-transactions"
	opGetConfirmed  = "get-confirmed-transaction"
)

// ListConfirmedTransactions fetches every confirmed on-chain transaction
// visible to the caller. A 404 means no data, not an error.
func (c *Client) ListConfirmedTransactions(ctx context.Context, token string) ([]models.ConfirmedTransaction, error) {
	raw, err := c.do(ctx, opListConfirmed, http.MethodGet, "/api/app-transactions", nil, token, nil)
	if errors.Is(errors.NotFound, err) {
		return []models.ConfirmedTransaction{}, nil
	}
	if err != nil {
		return nil, err
	}

	var env confirmedListEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.E(errors.Remote, "malformed confirmed transaction list", err)
	}
	if !env.Success || env.Transactions == nil {
		c.logger.Warn("unexpected confirmed transaction list response", zap.Bool("success", env.Success))
		return []models.ConfirmedTransaction{}, nil
	}

	txs := make([]models.ConfirmedTransaction, len(env.Transactions))
	for i, w := range env.Transactions {
		txs[i] = w.normalize()
	}
	return txs, nil
}

// GetConfirmedTransaction fetches a single confirmed transaction by id;
// not-found resolves to nil without an error.
func (c *Client) GetConfirmedTransaction(ctx context.Context, token, id string) (*models.ConfirmedTransaction, error) {
	raw, err := c.do(ctx, opGetConfirmed, http.MethodGet, "/api/app-transactions/"+id, nil, token, nil)
	if errors.Is(errors.NotFound, err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var env confirmedEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.E(errors.Remote, "malformed confirmed transaction response", err)
	}
	if !env.Success || env.Transaction == nil {
		c.logger.Warn("confirmed transaction missing from response", zap.String("id", id))
		return nil, nil
	}

	tx := env.Transaction.normalize()
	return &tx, nil
}
