package ansa

import (
	"context"
	"net/http"
	"net/url"

	"ansadash/api/internal/apierror"
)

const codeInvalidCustomerID = "invalid_customer_id"

func customerFromWire(wc wireCustomer) Customer {
	c := Customer{
		ID:     wc.ID,
		Email:  wc.Email,
		Phone:  wc.Phone,
		Status: wc.Status,
	}
	if wc.BillingDetails != nil {
		c.FirstName = wc.BillingDetails.FirstName
		c.LastName = wc.BillingDetails.LastName
	}
	return c
}

func (c *Client) GetCustomers(ctx context.Context, secretKey, cursor string, limit int) (*CustomersPage, *apierror.Error) {
	const path = "/customers"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, pageQuery(cursor, limit), nil)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	list, aerr := decode[wireCustomersList](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}

	page := &CustomersPage{
		Results: make([]Customer, 0, len(list.Customers)),
		Cursor:  list.Cursor,
		HasMore: list.HasMore,
	}
	for _, wc := range list.Customers {
		page.Results = append(page.Results, customerFromWire(wc))
	}
	if aerr := c.checkShape(path, page); aerr != nil {
		return nil, aerr
	}
	return page, nil
}

func (c *Client) GetCustomer(ctx context.Context, secretKey, customerID string) (*Customer, *apierror.Error) {
	path := "/customers/" + customerID
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	// Ansa reports an unknown customer as a 400 with a machine code.
	if status == http.StatusBadRequest && upstreamCode(raw) == codeInvalidCustomerID {
		return nil, apierror.NotFound("customer not found",
			apierror.WithLabel(apierror.LABEL_CUSTOMER_ID, customerID))
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

func (c *Client) GetCustomerDetails(ctx context.Context, secretKey, customerID string) (*CustomerDetailed, *apierror.Error) {
	path := "/customers/" + customerID
	q := url.Values{"details": {"true"}}
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, q, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status == http.StatusBadRequest && upstreamCode(raw) == codeInvalidCustomerID {
		return nil, apierror.NotFound("customer not found",
			apierror.WithLabel(apierror.LABEL_CUSTOMER_ID, customerID))
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wc, aerr := decode[wireCustomer](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	detailed := CustomerDetailed{
		Customer: customerFromWire(*wc),
		Metadata: wc.Metadata,
	}
	if wc.Balance != nil {
		detailed.Balance = Balance{Amount: wc.Balance.Amount, Currency: wc.Balance.Currency}
	}
	if aerr := c.checkShape(path, &detailed); aerr != nil {
		return nil, aerr
	}
	return &detailed, nil
}

// SearchCustomers resolves at most one customer; a 404 means no match and
// comes back as an empty list, not an error.
func (c *Client) SearchCustomers(ctx context.Context, secretKey string, params SearchParams) ([]Customer, *apierror.Error) {
	const path = "/customers/search"
	q := url.Values{}
	if params.CustomerID != "" {
		q.Set("customerId", params.CustomerID)
	}
	if params.PhoneNumber != "" {
		q.Set("phoneNumber", params.PhoneNumber)
	}
	if params.Email != "" {
		q.Set("email", params.Email)
	}

	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, q, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status == http.StatusNotFound {
		return []Customer{}, nil
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
	return []Customer{customer}, nil
}

func (c *Client) CountCustomers(ctx context.Context, secretKey string) (*Count, *apierror.Error) {
	const path = "/customers/count"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	count, aerr := decode[wireCount](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	out := Count{TotalCount: count.TotalCount}
	if aerr := c.checkShape(path, &out); aerr != nil {
		return nil, aerr
	}
	return &out, nil
}
