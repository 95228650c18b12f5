package insights

import (
	// Go Internal Packages
	"context"
	"time"

	// Local Packages
	models "bospay-gateway/models"

	// External Packages
	"go.uber.org/zap"
)

// Backend is the slice of the upstream client this service consumes.
type Backend interface {
	ListConfirmedTransactions(ctx context.Context, token string) ([]models.ConfirmedTransaction, error)
	ListInvoiceRecords(ctx context.Context, token, orgID string, limit, skip int) ([]models.InvoiceRecord, error)
	ResolveOrganization(ctx context.Context, token string) (string, error)
	ListProducts(ctx context.Context, token string) ([]models.Product, error)
}

type Service struct {
	logger  *zap.Logger
	backend Backend
	now     func() time.Time
}

func NewService(logger *zap.Logger, backend Backend) *Service {
	return &Service{logger: logger, backend: backend, now: time.Now}
}
