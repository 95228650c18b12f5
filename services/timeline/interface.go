package timeline

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "bospay-gateway/models"
)

// Backend is the slice of the upstream client this service consumes.
//
//go:generate mockgen -destination=mocks/mock_backend.go -source=interface.go Backend
type Backend interface {
	ListConfirmedTransactions(ctx context.Context, token string) ([]models.ConfirmedTransaction, error)
	GetConfirmedTransaction(ctx context.Context, token, id string) (*models.ConfirmedTransaction, error)
	ListInvoiceRecords(ctx context.Context, token, orgID string, limit, skip int) ([]models.InvoiceRecord, error)
	GetInvoiceRecord(ctx context.Context, token, id string) (*models.InvoiceRecord, error)
	ResolveOrganization(ctx context.Context, token string) (string, error)
}
