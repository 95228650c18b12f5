package bospay

import (
	// Go Internal Packages
	"bytes"
	"encoding/json"
	"strconv"

	// Local Packages
	models "bospay-gateway/models"
)

// The upstream occasionally drifts field types between deploys (numbers
// arriving as strings and vice versa). The flex types absorb that drift
// in one place so the rest of the codebase only sees the declared shapes.

// flexString decodes a JSON string, number, bool or null into a string.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	// numbers and bools keep their literal form
	*s = flexString(data)
	return nil
}

// flexFloat decodes a JSON number or numeric string; null and unparsable
// strings collapse to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(parsed)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type confirmedTxWire struct {
	ID              flexString `json:"_id"`
	InvoiceID       flexString `json:"invoiceId"`
	MerchantAddress flexString `json:"merchantAddress"`
	StaffID         flexString `json:"staffId"`
	UserID          flexString `json:"userId"`
	QRCodeID        flexString `json:"qrCodeId"`
	Amount          flexString `json:"amount"`
	ConvertedAmount flexString `json:"convertedAmount"`
	StatusReadable  flexString `json:"statusReadable"`
	FromAddress     flexString `json:"fromAddress"`
	TransactionHash flexString `json:"transactionHash"`
	TokenAddress    flexString `json:"tokenAddress"`
	TokenAmount     flexString `json:"tokenAmount"`
	TokenSymbol     flexString `json:"tokenSymbol"`
	OrgID           flexString `json:"orgId"`
	CreatedAt       flexString `json:"createdAt"`
	UpdatedAt       flexString `json:"updatedAt"`
	TxFee           flexString `json:"txFee"`
}

func (w confirmedTxWire) normalize() models.ConfirmedTransaction {
	return models.ConfirmedTransaction{
		ID:              string(w.ID),
		InvoiceID:       string(w.InvoiceID),
		MerchantAddress: string(w.MerchantAddress),
		StaffID:         string(w.StaffID),
		UserID:          string(w.UserID),
		QRCodeID:        string(w.QRCodeID),
		Amount:          string(w.Amount),
		ConvertedAmount: string(w.ConvertedAmount),
		StatusReadable:  string(w.StatusReadable),
		FromAddress:     string(w.FromAddress),
		TransactionHash: string(w.TransactionHash),
		TokenAddress:    string(w.TokenAddress),
		TokenAmount:     string(w.TokenAmount),
		TokenSymbol:     string(w.TokenSymbol),
		OrgID:           string(w.OrgID),
		CreatedAt:       string(w.CreatedAt),
		UpdatedAt:       string(w.UpdatedAt),
		TxFee:           string(w.TxFee),
	}
}

type invoiceWire struct {
	ID              flexString `json:"_id"`
	OrgID           flexString `json:"orgId"`
	InvoiceID       flexString `json:"invoiceId"`
	StoreID         flexString `json:"storeId"`
	Amount          flexFloat  `json:"amount"`
	BosPayFee       flexFloat  `json:"bosPayFee"`
	NetAmount       flexFloat  `json:"netAmount"`
	Currency        flexString `json:"currency"`
	ConvertedAmount flexString `json:"convertedAmount"`
	Status          flexString `json:"status"`
	CreatedAt       flexString `json:"createdAt"`
	UpdatedAt       flexString `json:"updatedAt"`
	UserID          flexString `json:"userId"`
	StaffID         flexString `json:"staffId"`
	QRCodeID        flexString `json:"qrCodeId"`
}

func (w invoiceWire) normalize() models.InvoiceRecord {
	return models.InvoiceRecord{
		ID:              string(w.ID),
		OrgID:           string(w.OrgID),
		InvoiceID:       string(w.InvoiceID),
		StoreID:         string(w.StoreID),
		Amount:          float64(w.Amount),
		BosPayFee:       float64(w.BosPayFee),
		NetAmount:       float64(w.NetAmount),
		Currency:        string(w.Currency),
		ConvertedAmount: string(w.ConvertedAmount),
		Status:          string(w.Status),
		CreatedAt:       string(w.CreatedAt),
		UpdatedAt:       string(w.UpdatedAt),
		UserID:          string(w.UserID),
		StaffID:         string(w.StaffID),
		QRCodeID:        string(w.QRCodeID),
	}
}

// Response envelopes. Confirmed-transaction endpoints carry a success
// flag; invoice endpoints reuse the "transaction(s)" keys without one.
type confirmedListEnvelope struct {
	Success      bool              `json:"success"`
	Transactions []confirmedTxWire `json:"transactions"`
}

type confirmedEnvelope struct {
	Success     bool             `json:"success"`
	Transaction *confirmedTxWire `json:"transaction"`
}

type invoiceListEnvelope struct {
	Transactions []invoiceWire `json:"transactions"`
}

type invoiceEnvelope struct {
	Transaction *invoiceWire `json:"transaction"`
}

type orgEnvelope struct {
	OrgID flexString `json:"orgId"`
}

type staffListEnvelope struct {
	Staff []models.StaffMember `json:"staff"`
}

type productListEnvelope struct {
	Products []models.Product `json:"products"`
}
