package timeline

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
)

// Resolve looks up a single record of unknown kind: the confirmed
// transaction source is tried first and wins on an identifier collision;
// only a not-found moves the lookup on to the invoice source. Auth and
// remote failures abort the chain immediately. A miss in both sources is
// a NotFound error.
func (s *Service) Resolve(ctx context.Context, token, id string) (*models.CombinedTransaction, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}
	if id == "" {
		return nil, errors.EmptyParamErr("id")
	}

	tx, err := s.backend.GetConfirmedTransaction(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		return &models.CombinedTransaction{Kind: models.RecordConfirmed, Confirmed: tx}, nil
	}

	record, err := s.backend.GetInvoiceRecord(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.E(errors.NotFound, "transaction not found", nil)
	}
	return &models.CombinedTransaction{Kind: models.RecordInvoice, Invoice: record}, nil
}
