package ansa

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ansadash/api/internal/apierror"
)

func (q TransactionsQuery) values() url.Values {
	v := url.Values{}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.TransactionType != "" {
		v.Set("transactionType", q.TransactionType)
	}
	if q.CreatedAtOrBefore != "" {
		v.Set("createdAtOrBefore", q.CreatedAtOrBefore)
	}
	if q.CreatedAtOrAfter != "" {
		v.Set("createdAtOrAfter", q.CreatedAtOrAfter)
	}
	if q.Label != "" {
		v.Set("label", q.Label)
	}
	if q.Direction != "" {
		v.Set("direction", q.Direction)
	}
	return v
}

// transactionsFromWire reshapes a wire list, dropping entries without a
// created timestamp. Ansa occasionally emits them for in-flight card
// authorizations; one bad row must not take the whole page down.
func (c *Client) transactionsFromWire(path, customerID string, wts []wireTransaction) []Transaction {
	out := make([]Transaction, 0, len(wts))
	for _, wt := range wts {
		if wt.Created == "" {
			c.log.Warn("transaction missing created timestamp, skipping",
				"path", path, "transactionId", wt.TransactionID)
			continue
		}
		t := Transaction{
			ID:              wt.TransactionID,
			CustomerID:      wt.CustomerID,
			PaymentMethodID: wt.PaymentMethodID,
			Amount:          wt.Amount,
			Type:            wt.TransactionType,
			CreatedAt:       wt.Created,
			Label:           wt.Label,
		}
		if customerID != "" {
			t.CustomerID = customerID
		}
		out = append(out, t)
	}
	return out
}

func (c *Client) transactionsPage(ctx context.Context, path, secretKey, customerID string, query TransactionsQuery) (*TransactionsPage, *apierror.Error) {
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, query.values(), nil)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	list, aerr := decode[wireTransactionsList](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	page := &TransactionsPage{
		Results:    c.transactionsFromWire(path, customerID, list.Transactions),
		NextCursor: list.NextCursor,
		HasMore:    list.HasMore,
	}
	if aerr := c.checkShape(path, page); aerr != nil {
		return nil, aerr
	}
	return page, nil
}

func (c *Client) GetCustomerTransactions(ctx context.Context, secretKey, customerID string, query TransactionsQuery) (*TransactionsPage, *apierror.Error) {
	return c.transactionsPage(ctx, "/customers/"+customerID+"/transactions", secretKey, customerID, query)
}

func (c *Client) GetTransactions(ctx context.Context, secretKey string, query TransactionsQuery) (*TransactionsPage, *apierror.Error) {
	return c.transactionsPage(ctx, "/transactions", secretKey, "", query)
}

func (c *Client) CountTransactions(ctx context.Context, secretKey string) (*Count, *apierror.Error) {
	const path = "/transactions/count"
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

func (c *Client) GetTransaction(ctx context.Context, secretKey, transactionID string) (*Transaction, *apierror.Error) {
	path := "/transactions/" + transactionID
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status == http.StatusNotFound {
		return nil, apierror.NotFound("no transaction found with that id",
			apierror.WithLabel(apierror.LABEL_TRANSACTION_ID, transactionID))
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
		CustomerID:      wt.CustomerID,
		PaymentMethodID: wt.PaymentMethodID,
		Amount:          wt.Amount,
		Type:            wt.TransactionType,
		CreatedAt:       wt.Created,
		Label:           wt.Label,
	}
	if aerr := c.checkShape(path, &t); aerr != nil {
		return nil, aerr
	}
	return &t, nil
}

func (c *Client) GetTransactionRefunds(ctx context.Context, secretKey, transactionID string) ([]Transaction, *apierror.Error) {
	path := "/transactions/" + transactionID + "/refunds"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	list, aerr := decode[wireTransactionsList](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	refunds := c.transactionsFromWire(path, "", list.Transactions)
	for i := range refunds {
		if aerr := c.checkShape(path, &refunds[i]); aerr != nil {
			return nil, aerr
		}
	}
	return refunds, nil
}
