package bospay_test

import (
	// Go Internal Packages
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	// Local Packages
	errors "bospay-gateway/errors"
	bospay "bospay-gateway/repositories/bospay"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *bospay.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return bospay.NewClient(server.URL, 5*time.Second, zap.NewNop())
}

func TestListConfirmedTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/app-transactions", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		// amount arrives as a number here, createdAt as usual
		_, _ = w.Write([]byte(`{
			"success": true,
			"transactions": [
				{"_id": "t1", "invoiceId": "inv-1", "amount": 42.5,
				 "tokenSymbol": "USDT", "statusReadable": "Confirmed",
				 "transactionHash": "0xabc", "createdAt": "2025-06-01T10:00:00Z"}
			]
		}`))
	})

	txs, err := client.ListConfirmedTransactions(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t1", txs[0].ID)
	assert.Equal(t, "inv-1", txs[0].InvoiceID)
	assert.Equal(t, "42.5", txs[0].Amount)
	assert.Equal(t, "USDT", txs[0].TokenSymbol)
	assert.Equal(t, "2025-06-01T10:00:00Z", txs[0].CreatedAt)
}

func TestListConfirmedTransactions_NotFoundMeansEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	txs, err := client.ListConfirmedTransactions(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.NotNil(t, txs)
}

func TestListConfirmedTransactions_UnsuccessfulEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false}`))
	})

	txs, err := client.ListConfirmedTransactions(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestListConfirmedTransactions_AuthFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ListConfirmedTransactions(context.Background(), "expired")
		require.Error(t, err)
		assert.True(t, errors.Is(errors.Unauthorized, err))
	}
}

func TestListConfirmedTransactions_RemoteFailureCarriesBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := client.ListConfirmedTransactions(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Remote, err))
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestGetConfirmedTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/app-transactions/t1", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "transaction": {"_id": "t1", "tokenSymbol": "ETH"}}`))
	})

	tx, err := client.GetConfirmedTransaction(context.Background(), "tok", "t1")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, "ETH", tx.TokenSymbol)
}

func TestGetConfirmedTransaction_NotFoundMeansNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	tx, err := client.GetConfirmedTransaction(context.Background(), "tok", "missing")
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestListInvoiceRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/btc-invoice", r.URL.Path)
		assert.Equal(t, "org-1", r.URL.Query().Get("orgId"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "50", r.URL.Query().Get("skip"))

		// amount arrives as a string here
		_, _ = w.Write([]byte(`{
			"transactions": [
				{"_id": "i1", "invoiceId": "INV-9", "amount": "120.50",
				 "bosPayFee": 1.2, "currency": "USD", "status": "paid",
				 "createdAt": "2025-06-02T09:00:00Z"}
			]
		}`))
	})

	records, err := client.ListInvoiceRecords(context.Background(), "tok", "org-1", 25, 50)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "INV-9", records[0].InvoiceID)
	assert.Equal(t, 120.50, records[0].Amount)
	assert.Equal(t, 1.2, records[0].BosPayFee)
	assert.Equal(t, "paid", records[0].Status)
}

func TestListInvoiceRecords_DefaultsPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("skip"))
		_, _ = w.Write([]byte(`{"transactions": []}`))
	})

	records, err := client.ListInvoiceRecords(context.Background(), "tok", "org-1", 0, -3)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListInvoiceRecords_RequiresOrg(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.ListInvoiceRecords(context.Background(), "tok", "", 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err))
	assert.False(t, called)
}

func TestGetInvoiceRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/btc-invoice", r.URL.Path)
		assert.Equal(t, "INV-9", r.URL.Query().Get("invoiceId"))
		_, _ = w.Write([]byte(`{"transaction": {"_id": "i1", "invoiceId": "INV-9", "amount": 10}}`))
	})

	record, err := client.GetInvoiceRecord(context.Background(), "tok", "INV-9")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "INV-9", record.InvoiceID)
	assert.Equal(t, 10.0, record.Amount)
}

func TestResolveOrganization(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "string org id", status: http.StatusOK, body: `{"orgId": "org-1"}`, want: "org-1"},
		{name: "numeric org id is coerced", status: http.StatusOK, body: `{"orgId": 42}`, want: "42"},
		{name: "missing org id", status: http.StatusOK, body: `{}`, want: ""},
		{name: "no organization", status: http.StatusNotFound, body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/get-org", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			orgID, err := client.ResolveOrganization(context.Background(), "tok")
			require.NoError(t, err)
			assert.Equal(t, tt.want, orgID)
		})
	}
}

func TestListStaff(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/staff", r.URL.Path)
		_, _ = w.Write([]byte(`{"staff": [{"staffId": "s1", "email": "a@b.co", "role": "manager"}]}`))
	})

	staff, err := client.ListStaff(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "a@b.co", staff[0].Email)
}

func TestGetBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/balance", r.URL.Path)
		_, _ = w.Write([]byte(`{"balance": 150.25, "previousBalance": 100}`))
	})

	balance, err := client.GetBalance(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, 150.25, balance.Balance)
	assert.Equal(t, 100.0, balance.PreviousBalance)
}

func TestListProducts_NotFoundMeansEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	products, err := client.ListProducts(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, products)
}
