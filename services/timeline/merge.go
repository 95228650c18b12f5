package timeline

import (
	// Go Internal Packages
	"sort"
	"time"

	// Local Packages
	models "bospay-gateway/models"
)

// Order is the chronological sort direction of the merged timeline.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Merge tags both collections with their discriminant, concatenates
// them, and stable-sorts by creation timestamp. Records with unparsable
// timestamps sort after every parsable one regardless of direction; two
// unparsable timestamps keep their relative order. Merge is pure: same
// inputs and order always produce the same sequence.
func Merge(confirmed []models.ConfirmedTransaction, invoices []models.InvoiceRecord, order Order) []models.CombinedTransaction {
	combined := make([]models.CombinedTransaction, 0, len(confirmed)+len(invoices))
	for i := range confirmed {
		combined = append(combined, models.CombinedTransaction{
			Kind:      models.RecordConfirmed,
			Confirmed: &confirmed[i],
		})
	}
	for i := range invoices {
		combined = append(combined, models.CombinedTransaction{
			Kind:    models.RecordInvoice,
			Invoice: &invoices[i],
		})
	}

	sort.SliceStable(combined, func(i, j int) bool {
		ti, oki := parseCreated(combined[i].CreatedAt())
		tj, okj := parseCreated(combined[j].CreatedAt())
		if !oki {
			return false
		}
		if !okj {
			return true
		}
		if order == OrderAsc {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})

	return combined
}

func parseCreated(raw string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
