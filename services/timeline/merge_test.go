package timeline_test

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	models "bospay-gateway/models"
	timeline "bospay-gateway/services/timeline"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedAt(id, createdAt string) models.ConfirmedTransaction {
	return models.ConfirmedTransaction{ID: id, CreatedAt: createdAt}
}

func invoiceAt(id, createdAt string) models.InvoiceRecord {
	return models.InvoiceRecord{InvoiceID: id, CreatedAt: createdAt}
}

func ids(records []models.CombinedTransaction) []string {
	out := make([]string, len(records))
	for i, r := range records {
		switch r.Kind {
		case models.RecordConfirmed:
			out[i] = r.Confirmed.ID
		case models.RecordInvoice:
			out[i] = r.Invoice.InvoiceID
		}
	}
	return out
}

func TestMerge_Interleaves(t *testing.T) {
	confirmed := []models.ConfirmedTransaction{
		confirmedAt("c1", "2025-06-01T10:00:00Z"),
		confirmedAt("c2", "2025-06-03T10:00:00Z"),
	}
	invoices := []models.InvoiceRecord{
		invoiceAt("i1", "2025-06-02T10:00:00Z"),
	}

	desc := timeline.Merge(confirmed, invoices, timeline.OrderDesc)
	assert.Equal(t, []string{"c2", "i1", "c1"}, ids(desc))

	asc := timeline.Merge(confirmed, invoices, timeline.OrderAsc)
	assert.Equal(t, []string{"c1", "i1", "c2"}, ids(asc))
}

func TestMerge_TagsKinds(t *testing.T) {
	merged := timeline.Merge(
		[]models.ConfirmedTransaction{confirmedAt("c1", "2025-06-01T10:00:00Z")},
		[]models.InvoiceRecord{invoiceAt("i1", "2025-06-02T10:00:00Z")},
		timeline.OrderAsc,
	)

	require.Len(t, merged, 2)
	assert.Equal(t, models.RecordConfirmed, merged[0].Kind)
	require.NotNil(t, merged[0].Confirmed)
	assert.Nil(t, merged[0].Invoice)
	assert.Equal(t, models.RecordInvoice, merged[1].Kind)
	require.NotNil(t, merged[1].Invoice)
	assert.Nil(t, merged[1].Confirmed)
}

func TestMerge_UnparsableTimestampsSortLast(t *testing.T) {
	confirmed := []models.ConfirmedTransaction{
		confirmedAt("bad1", "not a date"),
		confirmedAt("c1", "2025-06-01T10:00:00Z"),
	}
	invoices := []models.InvoiceRecord{
		invoiceAt("bad2", ""),
		invoiceAt("i1", "2025-06-02T10:00:00Z"),
	}

	for _, order := range []timeline.Order{timeline.OrderAsc, timeline.OrderDesc} {
		merged := timeline.Merge(confirmed, invoices, order)
		got := ids(merged)
		// the two unparsable records keep their relative order at the tail
		assert.Equal(t, []string{"bad1", "bad2"}, got[2:], "order %s", order)
	}
}

func TestMerge_Empty(t *testing.T) {
	merged := timeline.Merge(nil, nil, timeline.OrderDesc)
	assert.Empty(t, merged)
	assert.NotNil(t, merged)
}

func TestMerge_Deterministic(t *testing.T) {
	confirmed := []models.ConfirmedTransaction{
		confirmedAt("c1", "2025-06-01T10:00:00Z"),
		confirmedAt("c2", "2025-06-01T10:00:00Z"),
	}
	invoices := []models.InvoiceRecord{
		invoiceAt("i1", "2025-06-01T10:00:00Z"),
	}

	first := timeline.Merge(confirmed, invoices, timeline.OrderDesc)
	second := timeline.Merge(confirmed, invoices, timeline.OrderDesc)
	assert.Equal(t, ids(first), ids(second))
	// ties keep source order: confirmed block before invoices
	assert.Equal(t, []string{"c1", "c2", "i1"}, ids(first))
}
