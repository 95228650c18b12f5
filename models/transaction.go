package models

// RecordKind is the discriminant tag of a CombinedTransaction. It is
// assigned when the two sources are merged so downstream code can branch
// on the record shape without probing for fields.
type RecordKind string

const (
	RecordConfirmed RecordKind = "confirmed"
	RecordInvoice   RecordKind = "invoice"
)

// ConfirmedTransaction is a settled on-chain payment reported by the
// upstream API. TransactionHash is always present; amounts stay decimal
// strings end to end.
type ConfirmedTransaction struct {
	ID              string `json:"_id,omitempty"`
	InvoiceID       string `json:"invoiceId"`
	MerchantAddress string `json:"merchantAddress"`
	StaffID         string `json:"staffId"`
	UserID          string `json:"userId"`
	QRCodeID        string `json:"qrCodeId"`
	Amount          string `json:"amount"`
	ConvertedAmount string `json:"convertedAmount,omitempty"`
	StatusReadable  string `json:"statusReadable"`
	FromAddress     string `json:"fromAddress"`
	TransactionHash string `json:"transactionHash"`
	TokenAddress    string `json:"tokenAddress,omitempty"`
	TokenAmount     string `json:"tokenAmount,omitempty"`
	TokenSymbol     string `json:"tokenSymbol,omitempty"`
	OrgID           string `json:"orgId"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
	TxFee           string `json:"txFee,omitempty"`
}

// InvoiceRecord is an invoice or QR-code payment request scoped to an
// organization and store. It has a lifecycle status and never a
// transaction hash.
type InvoiceRecord struct {
	ID              string  `json:"_id"`
	OrgID           string  `json:"orgId"`
	InvoiceID       string  `json:"invoiceId"`
	StoreID         string  `json:"storeId"`
	Amount          float64 `json:"amount"`
	BosPayFee       float64 `json:"bosPayFee"`
	NetAmount       float64 `json:"netAmount"`
	Currency        string  `json:"currency"`
	ConvertedAmount string  `json:"convertedAmount,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
	UserID          string  `json:"userId"`
	StaffID         string  `json:"staffId"`
	QRCodeID        string  `json:"qrCodeId"`
}

// CombinedTransaction is the tagged union over the two record shapes.
// Exactly one of Confirmed or Invoice is set, matching Kind.
type CombinedTransaction struct {
	Kind      RecordKind            `json:"type"`
	Confirmed *ConfirmedTransaction `json:"confirmed,omitempty"`
	Invoice   *InvoiceRecord        `json:"invoice,omitempty"`
}

// InvoiceID returns the invoice identifier shared by both shapes.
func (t CombinedTransaction) InvoiceID() string {
	if t.Kind == RecordConfirmed && t.Confirmed != nil {
		return t.Confirmed.InvoiceID
	}
	if t.Invoice != nil {
		return t.Invoice.InvoiceID
	}
	return ""
}

// CreatedAt returns the raw creation timestamp of the underlying record.
func (t CombinedTransaction) CreatedAt() string {
	if t.Kind == RecordConfirmed && t.Confirmed != nil {
		return t.Confirmed.CreatedAt
	}
	if t.Invoice != nil {
		return t.Invoice.CreatedAt
	}
	return ""
}
