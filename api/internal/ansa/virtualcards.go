package ansa

import (
	"context"
	"net/http"

	"ansadash/api/internal/apierror"
)

const codeVirtualCardInactive = "virtual_card_program_inactive"

// virtualCardNotFound covers both missing cards and merchants without an
// active virtual card program, which Ansa reports as a 400 with a code.
func virtualCardNotFound(customerID string, status int, raw []byte) *apierror.Error {
	if status == http.StatusNotFound {
		return apierror.NotFound("customer does not have a virtual card",
			apierror.WithLabel(apierror.LABEL_CUSTOMER_ID, customerID))
	}
	if status == http.StatusBadRequest && upstreamCode(raw) == codeVirtualCardInactive {
		return apierror.NotFound("customer does not have a virtual card",
			apierror.WithLabel(apierror.LABEL_CUSTOMER_ID, customerID))
	}
	return nil
}

func (c *Client) virtualCardFromWire(path string, wv *wireVirtualCard) (*VirtualCard, *apierror.Error) {
	vc := &VirtualCard{
		ID:        wv.ID,
		CreatedAt: wv.CreatedAt,
		Type:      wv.Type,
	}
	if wv.Card != nil {
		vc.Card = VirtualCardDetails{
			LastFour:       wv.Card.LastFour,
			ExpMonth:       wv.Card.ExpMonth,
			ExpYear:        wv.Card.ExpYear,
			CardHolderName: wv.Card.CardHolderName,
			CardNetwork:    wv.Card.CardNetwork,
			State:          wv.Card.State,
		}
	}
	if aerr := c.checkShape(path, vc); aerr != nil {
		return nil, aerr
	}
	return vc, nil
}

func (c *Client) GetVirtualCard(ctx context.Context, secretKey, customerID string) (*VirtualCard, *apierror.Error) {
	path := "/customers/" + customerID + "/virtual-card"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if aerr := virtualCardNotFound(customerID, status, raw); aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wv, aerr := decode[wireVirtualCard](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	return c.virtualCardFromWire(path, wv)
}

func (c *Client) SetVirtualCardState(ctx context.Context, secretKey, customerID string, params CardStateParams) (*VirtualCard, *apierror.Error) {
	path := "/customers/" + customerID + "/virtual-card"
	status, raw, aerr := c.do(ctx, http.MethodPut, path, secretKey, nil, wireCardState{Status: params.State})
	if aerr != nil {
		return nil, aerr
	}
	if aerr := virtualCardNotFound(customerID, status, raw); aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wv, aerr := decode[wireVirtualCard](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	return c.virtualCardFromWire(path, wv)
}

func (c *Client) GetVirtualCardTransactions(ctx context.Context, secretKey, customerID, cursor string, limit int) (*VirtualCardTransactionsPage, *apierror.Error) {
	path := "/customers/" + customerID + "/virtual-card/transactions"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, pageQuery(cursor, limit), nil)
	if aerr != nil {
		return nil, aerr
	}
	if aerr := virtualCardNotFound(customerID, status, raw); aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	list, aerr := decode[wireVCTransactionsList](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	page := &VirtualCardTransactionsPage{
		Results:    make([]VirtualCardTransaction, 0, len(list.Transactions)),
		NextCursor: list.NextCursor,
		HasMore:    list.HasMore,
	}
	for _, wt := range list.Transactions {
		page.Results = append(page.Results, VirtualCardTransaction{
			ID:                  wt.ID,
			AcceptorID:          wt.AcceptorID,
			AuthorizationAmount: wt.AuthorizationAmount,
			Decision:            wt.Decision,
			Status:              wt.Status,
			Created:             wt.Created,
		})
	}
	if aerr := c.checkShape(path, page); aerr != nil {
		return nil, aerr
	}
	return page, nil
}

func (c *Client) CountVirtualCardTransactions(ctx context.Context, secretKey, customerID string) (*Count, *apierror.Error) {
	path := "/customers/" + customerID + "/virtual-card/transactions/count"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if aerr := virtualCardNotFound(customerID, status, raw); aerr != nil {
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
