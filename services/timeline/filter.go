package timeline

import (
	// Go Internal Packages
	"strings"

	// Local Packages
	models "bospay-gateway/models"
)

// Tab selects which record kinds survive filtering.
type Tab string

const (
	TabAll       Tab = "all"
	TabConfirmed Tab = "confirmed"
	TabInvoices  Tab = "invoices"
)

// Filter applies the tab filter and then a case-insensitive substring
// search over the fields applicable to each record kind: the invoice id
// always, plus token symbol, transaction hash and readable status for
// confirmed records, or currency and status for invoices. The term is
// trimmed first, so an all-whitespace term matches everything rather
// than being searched literally. Ordering is inherited from the input.
func Filter(records []models.CombinedTransaction, tab Tab, term string) []models.CombinedTransaction {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]models.CombinedTransaction, 0, len(records))
	for _, record := range records {
		if tab == TabConfirmed && record.Kind != models.RecordConfirmed {
			continue
		}
		if tab == TabInvoices && record.Kind != models.RecordInvoice {
			continue
		}
		if needle != "" && !matches(record, needle) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matches(record models.CombinedTransaction, needle string) bool {
	if contains(record.InvoiceID(), needle) {
		return true
	}
	switch record.Kind {
	case models.RecordConfirmed:
		tx := record.Confirmed
		return contains(tx.TokenSymbol, needle) ||
			contains(tx.TransactionHash, needle) ||
			contains(tx.StatusReadable, needle)
	case models.RecordInvoice:
		inv := record.Invoice
		return contains(inv.Currency, needle) ||
			contains(inv.Status, needle)
	}
	return false
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
