package ansa

import (
	"context"
	"net/http"

	"ansadash/api/internal/apierror"
)

// Internal-admin and sandbox seeding operations. These are only reachable
// from the setup CLI; the API server never holds the admin key.

// CreatedMerchant is the one place a merchant secret key crosses the wire
// in a response; it goes straight into the keys table and nowhere else.
type CreatedMerchant struct {
	MerchantID        string `json:"merchantId" validate:"required"`
	MerchantSecretKey string `json:"merchantSecretKey" validate:"required"`
}

type CreateCustomerParams struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// Square sandbox fixtures; fine to commit, they only work against the
// sandbox environment.
const (
	sandboxProcessor       = "square"
	sandboxAppClientID     = "sandbox-sq0idb-KNXVZ7vy3I-xSXyPX9rT-w"
	sandboxAppClientSecret = "sandbox-sq0csb-GZ8zK5aEuxSFIl_aPHL2-VoZ5rpvyCNxI00K0m2J2s4"
	sandboxAccessToken     = "EAAAEBrLBPioqgVqjrXNHL63zwYqwXOBKXNOuwQsRttpy4GHf2oUEbmF3SC7iUTT"
	sandboxCardToken       = "cnon:card-nonce-ok"
)

func (c *Client) CreateMerchant(ctx context.Context, name string) (*CreatedMerchant, *apierror.Error) {
	const path = "/internal-admin/merchants"
	body := wireCreateMerchant{
		Name:                    name,
		DefaultPaymentProcessor: sandboxProcessor,
		SquareAppClientID:       sandboxAppClientID,
		SquareAppClientSecret:   sandboxAppClientSecret,
		SquareAccessToken:       sandboxAccessToken,
	}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, c.adminKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wm, aerr := decode[wireCreatedMerchant](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	created := &CreatedMerchant{
		MerchantID:        wm.MerchantID,
		MerchantSecretKey: wm.MerchantSecretKey,
	}
	if aerr := c.checkShape(path, created); aerr != nil {
		return nil, aerr
	}
	return created, nil
}

func (c *Client) CreateCustomer(ctx context.Context, secretKey string, params CreateCustomerParams) (*Customer, *apierror.Error) {
	const path = "/customers"
	body := wireCreateCustomer{
		Email: params.Email,
		Phone: params.Phone,
	}
	body.BillingDetails.FirstName = params.FirstName
	body.BillingDetails.LastName = params.LastName
	body.BillingDetails.Address = wireAddress{
		Line1:      "1 Market St",
		City:       "San Francisco",
		State:      "CA",
		PostalCode: "94107",
		Country:    "US",
	}

	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wc, aerr := decode[wireCustomer](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	customer := customerFromWire(*wc)
	if aerr := c.checkShape(path, &customer); aerr != nil {
		return nil, aerr
	}
	return &customer, nil
}

func (c *Client) CreatePaymentMethod(ctx context.Context, secretKey, customerID string) (*PaymentMethod, *apierror.Error) {
	path := "/customers/" + customerID + "/payment-methods"
	body := wireCreatePaymentMethod{
		Token:       sandboxCardToken,
		TokenSource: sandboxProcessor,
		TokenData:   map[string]any{},
		Metadata:    map[string]any{},
	}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wp, aerr := decode[wirePaymentMethod](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	pm := PaymentMethod{ID: wp.ID, CustomerID: customerID}
	if wp.Card != nil {
		pm.Brand = wp.Card.Brand
		pm.LastFour = wp.Card.LastFour
	}
	// creation responses omit card details for tokenized sandbox cards
	if pm.Brand == "" {
		pm.Brand = "visa"
	}
	if pm.LastFour == "" {
		pm.LastFour = "1111"
	}
	return &pm, nil
}

func (c *Client) AddBalance(ctx context.Context, secretKey, customerID, paymentMethodID string, amount int64) (*Transaction, *apierror.Error) {
	path := "/customers/" + customerID + "/add-balance"
	body := wireAddBalance{
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
		Currency:        "USD",
	}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wt, aerr := decode[wireTransaction](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	t := Transaction{
		ID:              wt.TransactionID,
		CustomerID:      customerID,
		PaymentMethodID: wt.PaymentMethodID,
		Amount:          wt.Amount,
		Type:            wt.TransactionType,
		CreatedAt:       wt.Created,
		Label:           wt.Label,
	}
	return &t, nil
}

func (c *Client) UseBalance(ctx context.Context, secretKey, customerID string, amount int64, label string) (*Transaction, *apierror.Error) {
	path := "/customers/" + customerID + "/use-balance"
	body := wireUseBalance{Amount: amount, Label: label}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wt, aerr := decode[wireTransaction](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	t := Transaction{
		ID:              wt.TransactionID,
		CustomerID:      customerID,
		PaymentMethodID: wt.PaymentMethodID,
		Amount:          wt.Amount,
		Type:            wt.TransactionType,
		CreatedAt:       wt.Created,
		Label:           wt.Label,
	}
	return &t, nil
}
