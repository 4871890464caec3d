package ansa

import (
	"context"

	"ansadash/api/internal/apierror"
)

// API is the merchant-scoped surface the dashboard consumes. Each call
// authorizes with the secret key resolved for the caller's merchant.
// Internal-admin operations live on *Client directly; only the seeding CLI
// holds the admin key.
type API interface {
	GetCustomers(ctx context.Context, secretKey, cursor string, limit int) (*CustomersPage, *apierror.Error)
	GetCustomer(ctx context.Context, secretKey, customerID string) (*Customer, *apierror.Error)
	GetCustomerDetails(ctx context.Context, secretKey, customerID string) (*CustomerDetailed, *apierror.Error)
	SearchCustomers(ctx context.Context, secretKey string, params SearchParams) ([]Customer, *apierror.Error)
	CountCustomers(ctx context.Context, secretKey string) (*Count, *apierror.Error)

	GetAutoReload(ctx context.Context, secretKey, customerID string) (*AutoReload, *apierror.Error)
	ConfigureAutoReload(ctx context.Context, secretKey, customerID string, params AutoReloadParams) (*AutoReload, *apierror.Error)
	GetPaymentMethods(ctx context.Context, secretKey, customerID string) ([]PaymentMethod, *apierror.Error)

	GetCustomerTransactions(ctx context.Context, secretKey, customerID string, query TransactionsQuery) (*TransactionsPage, *apierror.Error)
	GetTransactions(ctx context.Context, secretKey string, query TransactionsQuery) (*TransactionsPage, *apierror.Error)
	CountTransactions(ctx context.Context, secretKey string) (*Count, *apierror.Error)
	GetTransaction(ctx context.Context, secretKey, transactionID string) (*Transaction, *apierror.Error)
	GetTransactionRefunds(ctx context.Context, secretKey, transactionID string) ([]Transaction, *apierror.Error)

	GetVirtualCard(ctx context.Context, secretKey, customerID string) (*VirtualCard, *apierror.Error)
	SetVirtualCardState(ctx context.Context, secretKey, customerID string, params CardStateParams) (*VirtualCard, *apierror.Error)
	GetVirtualCardTransactions(ctx context.Context, secretKey, customerID, cursor string, limit int) (*VirtualCardTransactionsPage, *apierror.Error)
	CountVirtualCardTransactions(ctx context.Context, secretKey, customerID string) (*Count, *apierror.Error)

	GetMerchant(ctx context.Context, secretKey, merchantID string) (*Merchant, *apierror.Error)
	UpdateMerchant(ctx context.Context, secretKey, merchantID string, params UpdateMerchantParams) (*Merchant, *apierror.Error)
	GetMerchantInsights(ctx context.Context, secretKey, merchantID string) (*Insights, *apierror.Error)
	FundCustomerBalance(ctx context.Context, secretKey string, params FundBalanceParams) (*FundedBalance, *apierror.Error)
	RefundBalance(ctx context.Context, secretKey string, params RefundBalanceParams) (*Refund, *apierror.Error)
}

var _ API = (*Client)(nil)
