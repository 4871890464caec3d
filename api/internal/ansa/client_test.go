package ansa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/config"
	"ansadash/api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "sk_test_123"

func testLogger() logger.Logger {
	return logger.Init(&config.Config{})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "admin_test_key", testLogger())
}

func TestGetCustomersReshapesBillingDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, testSecretKey, r.Header.Get("Authorization"))
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Write([]byte(`{
			"customers": [{
				"id": "5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b",
				"email": "jo@example.com",
				"phone": "5305512345",
				"status": "active",
				"billingDetails": {"firstName": "Jo", "lastName": "Woods"}
			}],
			"cursor": "next",
			"hasMore": true
		}`))
	}))

	page, aerr := client.GetCustomers(context.Background(), testSecretKey, "abc", 25)
	require.Nil(t, aerr)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Jo", page.Results[0].FirstName)
	assert.Equal(t, "Woods", page.Results[0].LastName)
	assert.Equal(t, "next", page.Cursor)
	assert.True(t, page.HasMore)
}

func TestGetCustomerInvalidIDBecomesNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "invalid_customer_id", "message": "no such customer"}`))
	}))

	_, aerr := client.GetCustomer(context.Background(), testSecretKey, "missing-id")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
	assert.Equal(t, "missing-id", aerr.Labels[apierror.LABEL_CUSTOMER_ID])
}

func TestGetCustomerOtherBadRequestStaysInternal(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "something_else"}`))
	}))

	_, aerr := client.GetCustomer(context.Background(), testSecretKey, "some-id")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_INTERNAL, aerr.Class)
	assert.Equal(t, "400", aerr.Labels[apierror.LABEL_ANSA_STATUS_CODE])
}

func TestSearchCustomersNoMatchIsEmptyList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/search", r.URL.Path)
		assert.Equal(t, "jo@example.com", r.URL.Query().Get("email"))
		w.WriteHeader(http.StatusNotFound)
	}))

	customers, aerr := client.SearchCustomers(context.Background(), testSecretKey, SearchParams{Email: "jo@example.com"})
	require.Nil(t, aerr)
	assert.Empty(t, customers)
}

func TestSearchCustomersSingleMatch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b",
			"email": "jo@example.com",
			"status": "active",
			"billingDetails": {"firstName": "Jo", "lastName": "Woods"}
		}`))
	}))

	customers, aerr := client.SearchCustomers(context.Background(), testSecretKey, SearchParams{Email: "jo@example.com"})
	require.Nil(t, aerr)
	require.Len(t, customers, 1)
	assert.Equal(t, "5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b", customers[0].ID)
}

func TestGetTransactionsSkipsRowsWithoutCreated(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"transactions": [
				{"transactionId": "tx-1", "amount": 5000, "transactionType": "add_balance", "created": "2026-08-01T12:00:00Z"},
				{"transactionId": "tx-2", "amount": 1000, "transactionType": "card_authorize_transaction", "created": ""},
				{"transactionId": "tx-3", "amount": 500, "transactionType": "use_balance", "created": "2026-08-02T12:00:00Z"}
			],
			"nextCursor": "cur",
			"hasMore": false
		}`))
	}))

	page, aerr := client.GetTransactions(context.Background(), testSecretKey, TransactionsQuery{})
	require.Nil(t, aerr)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "tx-1", page.Results[0].ID)
	assert.Equal(t, "tx-3", page.Results[1].ID)
}

func TestGetCustomerTransactionsStampsCustomerID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b/transactions", r.URL.Path)
		w.Write([]byte(`{
			"transactions": [{"transactionId": "tx-1", "amount": 5000, "transactionType": "add_balance", "created": "2026-08-01T12:00:00Z"}],
			"hasMore": false
		}`))
	}))

	page, aerr := client.GetCustomerTransactions(context.Background(), testSecretKey,
		"5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b", TransactionsQuery{})
	require.Nil(t, aerr)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b", page.Results[0].CustomerID)
}

func TestGetTransactionNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, aerr := client.GetTransaction(context.Background(), testSecretKey, "tx-404")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
}

func TestGetVirtualCardProgramInactiveBecomesNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "virtual_card_program_inactive"}`))
	}))

	_, aerr := client.GetVirtualCard(context.Background(), testSecretKey, "cust-1")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_NOT_FOUND, aerr.Class)
}

func TestGetVirtualCardBadStateIsBadShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "vc-1",
			"createdAt": "2026-08-01T12:00:00Z",
			"type": "virtual",
			"card": {"lastFour": "4242", "expMonth": "08", "expYear": "2030", "cardNetwork": "visa", "state": "MELTED"}
		}`))
	}))

	_, aerr := client.GetVirtualCard(context.Background(), testSecretKey, "cust-1")
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_INTERNAL, aerr.Class)
}

func TestGetMerchantInsightsFlattensAmounts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/merchants/m-1/insights", r.URL.Path)
		w.Write([]byte(`{
			"totalUsers": 42,
			"totalCustomerAddedBalance": {"amount": 100000, "currency": "usd"},
			"totalCustomerBalance": {"amount": 25000, "currency": "usd"},
			"totalSettledBalance": {"amount": 60000, "currency": "usd"},
			"totalMerchantFundedBalance": {"amount": 15000, "currency": "usd"}
		}`))
	}))

	insights, aerr := client.GetMerchantInsights(context.Background(), testSecretKey, "m-1")
	require.Nil(t, aerr)
	assert.Equal(t, int64(42), insights.TotalUsers)
	assert.Equal(t, int64(100000), insights.TotalCustomerAddedBalance)
	assert.Equal(t, int64(25000), insights.TotalCustomerBalance)
	assert.Equal(t, int64(60000), insights.TotalSettledBalance)
	assert.Equal(t, int64(15000), insights.TotalMerchantFundedBalance)
}

func TestUpdateMerchantRemapsTierKeys(t *testing.T) {
	var sent map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &sent))

		w.Write([]byte(`{
			"id": "m-1",
			"name": "Coffee Co",
			"metadata": {
				"auto_reload_config": {
					"minimum_auto_reload_amount": 500,
					"maximum_auto_reload_amount": 100000,
					"minimum_auto_reload_threshold": 100
				},
				"promotions": {
					"type": "tiered",
					"rewardTiers": [{"minTransactionRequirement": 1000, "promotionAmount": 100}]
				}
			}
		}`))
	}))

	merchant, aerr := client.UpdateMerchant(context.Background(), testSecretKey, "m-1", UpdateMerchantParams{
		PromoConfig: &PromotionParams{
			PromotionType: PROMO_TIERED,
			Tiers:         []TierParams{{MinTransactionRequirement: 1000, PromotionAmount: 100}},
		},
	})
	require.Nil(t, aerr)

	promo := sent["promoConfig"].(map[string]any)
	assert.Equal(t, "tiered", promo["promoType"])
	tier := promo["rewardTiers"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(100), tier["promoAmount"])
	assert.Equal(t, float64(1000), tier["minTransactionRequirement"])

	require.NotNil(t, merchant.Metadata.PromotionConfig)
	assert.Equal(t, int64(500), merchant.Metadata.AutoReloadConfig.MinimumReloadAmount)
	assert.Equal(t, int64(100), merchant.Metadata.PromotionConfig.RewardTiers[0].PromotionAmount)
}

func TestRefundBalanceValidatesStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "rf-1",
			"transactionId": "tx-1",
			"customerId": "cust-1",
			"amount": 500,
			"currency": "usd",
			"status": "pending",
			"type": "balance",
			"created": "2026-08-01T12:00:00Z"
		}`))
	}))

	_, aerr := client.RefundBalance(context.Background(), testSecretKey, RefundBalanceParams{
		TransactionID: "5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b",
		Amount:        500,
		Currency:      "usd",
	})
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_INTERNAL, aerr.Class)
}

func TestRefundBalanceSucceeded(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds/balance", r.URL.Path)
		w.Write([]byte(`{
			"id": "rf-1",
			"transactionId": "tx-1",
			"customerId": "cust-1",
			"amount": 500,
			"currency": "usd",
			"status": "succeeded",
			"type": "balance",
			"created": "2026-08-01T12:00:00Z"
		}`))
	}))

	refund, aerr := client.RefundBalance(context.Background(), testSecretKey, RefundBalanceParams{
		TransactionID: "5f2b6f3a-1f0d-4a8e-9d8a-0a4c1e2d3f4b",
		Amount:        500,
		Currency:      "usd",
	})
	require.Nil(t, aerr)
	assert.Equal(t, "succeeded", refund.Status)
	assert.Equal(t, int64(500), refund.Amount)
}

func TestNetworkFailureIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, "admin_test_key", testLogger())

	_, aerr := client.CountCustomers(context.Background(), testSecretKey)
	require.NotNil(t, aerr)
	assert.Equal(t, apierror.CLASS_INTERNAL, aerr.Class)
}

func TestCreateMerchantUsesAdminKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal-admin/merchants", r.URL.Path)
		assert.Equal(t, "admin_test_key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"merchantId": "m-9", "merchantSecretKey": "sk_live_xyz"}`))
	}))

	created, aerr := client.CreateMerchant(context.Background(), "Coffee Co")
	require.Nil(t, aerr)
	assert.Equal(t, "m-9", created.MerchantID)
	assert.Equal(t, "sk_live_xyz", created.MerchantSecretKey)
}
