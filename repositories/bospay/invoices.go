package bospay

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"

	// External Packages
	"go.uber.org/zap"
)

const (
	opListInvoices = "list-invoice-records"
	opGetInvoice   = "get-invoice-record"

	// DefaultInvoicePageSize is the upstream page size used when the
	// caller does not pick one.
	DefaultInvoicePageSize = 50
)

// ListInvoiceRecords fetches one page of invoice records for the given
// organization. Invoices are organization-scoped, so orgID is required.
func (c *Client) ListInvoiceRecords(ctx context.Context, token, orgID string, limit, skip int) ([]models.InvoiceRecord, error) {
	if orgID == "" {
		return nil, errors.EmptyParamErr("orgId")
	}
	if limit <= 0 {
		limit = DefaultInvoicePageSize
	}
	if skip < 0 {
		skip = 0
	}

	query := url.Values{}
	query.Set("orgId", orgID)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))

	raw, err := c.do(ctx, opListInvoices, http.MethodGet, "/api/btc-invoice", query, token, nil)
	if errors.Is(errors.NotFound, err) {
		return []models.InvoiceRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var env invoiceListEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.E(errors.Remote, "malformed invoice record list", err)
	}
	if env.Transactions == nil {
		c.logger.Warn("unexpected invoice record list response", zap.String("orgId", orgID))
		return []models.InvoiceRecord{}, nil
	}

	records := make([]models.InvoiceRecord, len(env.Transactions))
	for i, w := range env.Transactions {
		records[i] = w.normalize()
	}
	return records, nil
}

// GetInvoiceRecord fetches a single invoice record by invoice id;
// not-found resolves to nil without an error.
func (c *Client) GetInvoiceRecord(ctx context.Context, token, id string) (*models.InvoiceRecord, error) {
	query := url.Values{}
	query.Set("invoiceId", id)

	raw, err := c.do(ctx, opGetInvoice, http.MethodGet, "/api/btc-invoice", query, token, nil)
	if errors.Is(errors.NotFound, err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var env invoiceEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.E(errors.Remote, "malformed invoice record response", err)
	}
	if env.Transaction == nil {
		c.logger.Warn("invoice record missing from response", zap.String("id", id))
		return nil, nil
	}

	record := env.Transaction.normalize()
	return &record, nil
}
