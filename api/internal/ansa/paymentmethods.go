package ansa

import (
	"context"
	"net/http"

	"ansadash/api/internal/apierror"
)

func (c *Client) GetPaymentMethods(ctx context.Context, secretKey, customerID string) ([]PaymentMethod, *apierror.Error) {
	path := "/customers/" + customerID + "/payment-methods"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
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

	list, aerr := decode[wirePaymentMethodsList](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	methods := make([]PaymentMethod, 0, len(list.PaymentMethods))
	for _, wp := range list.PaymentMethods {
		pm := PaymentMethod{
			ID:         wp.ID,
			CustomerID: customerID,
		}
		if wp.Card != nil {
			pm.Brand = wp.Card.Brand
			pm.LastFour = wp.Card.LastFour
		}
		if aerr := c.checkShape(path, &pm); aerr != nil {
			return nil, aerr
		}
		methods = append(methods, pm)
	}
	return methods, nil
}
