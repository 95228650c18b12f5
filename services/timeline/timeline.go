package timeline

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"

	// External Packages
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize matches the upstream invoice page size.
const DefaultPageSize = 50

type Service struct {
	logger  *zap.Logger
	backend Backend
}

func NewService(logger *zap.Logger, backend Backend) *Service {
	return &Service{logger: logger, backend: backend}
}

// Query describes one timeline page request. Zero values fall back to
// tab all, order desc, limit 50, skip 0.
type Query struct {
	Tab    Tab
	Search string
	Order  Order
	Limit  int
	Skip   int
}

func (q *Query) normalize() error {
	if q.Tab == "" {
		q.Tab = TabAll
	}
	if q.Order == "" {
		q.Order = OrderDesc
	}
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Skip < 0 {
		q.Skip = 0
	}

	ve := errors.ValidationErrs()
	switch q.Tab {
	case TabAll, TabConfirmed, TabInvoices:
	default:
		ve.Add("tab", "must be one of all, confirmed, invoices")
	}
	switch q.Order {
	case OrderAsc, OrderDesc:
	default:
		ve.Add("sort", "must be one of asc, desc")
	}
	if err := ve.Err(); err != nil {
		return errors.InvalidParamsErr(err)
	}
	return nil
}

// Page is one filtered slice of the merged timeline.
type Page struct {
	Transactions []models.CombinedTransaction `json:"transactions"`
	Limit        int                          `json:"limit"`
	Skip         int                          `json:"skip"`

	// HasMore is a heuristic: true when the filtered count is a positive
	// multiple of the limit. The upstream exposes no total count or
	// cursor, so this misfires when the last page is exactly full.
	HasMore bool `json:"has_more"`
}

// List builds one page of the merged transaction timeline. The
// confirmed-transaction fetch and the organization resolution run
// concurrently; the invoice fetch is gated on a non-empty organization
// and is skipped entirely, leaving invoices empty, when the merchant
// has none.
func (s *Service) List(ctx context.Context, token string, q Query) (*Page, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}
	if err := q.normalize(); err != nil {
		return nil, err
	}

	var (
		confirmed []models.ConfirmedTransaction
		invoices  []models.InvoiceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		confirmed, err = s.backend.ListConfirmedTransactions(gctx, token)
		return err
	})
	g.Go(func() error {
		orgID, err := s.backend.ResolveOrganization(gctx, token)
		if err != nil {
			return err
		}
		if orgID == "" {
			s.logger.Warn("no organization resolved, skipping invoice records")
			return nil
		}
		invoices, err = s.backend.ListInvoiceRecords(gctx, token, orgID, q.Limit, q.Skip)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Merge(confirmed, invoices, q.Order)
	filtered := Filter(merged, q.Tab, q.Search)

	return &Page{
		Transactions: filtered,
		Limit:        q.Limit,
		Skip:         q.Skip,
		HasMore:      len(filtered) > 0 && len(filtered)%q.Limit == 0,
	}, nil
}
