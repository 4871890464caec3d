package ansa

import (
	"context"
	"net/http"

	"ansadash/api/internal/apierror"
)

func (c *Client) autoReloadFromWire(path string, wa *wireAutoReload) (*AutoReload, *apierror.Error) {
	ar := &AutoReload{
		Enabled:         wa.Enabled,
		PaymentMethodID: wa.PaymentMethodID,
		ReloadAmount:    wa.ReloadAmount,
		ReloadThreshold: wa.ReloadThreshold,
	}
	if aerr := c.checkShape(path, ar); aerr != nil {
		return nil, aerr
	}
	return ar, nil
}

func (c *Client) GetAutoReload(ctx context.Context, secretKey, customerID string) (*AutoReload, *apierror.Error) {
	path := "/customers/" + customerID + "/auto-reload"
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

	wa, aerr := decode[wireAutoReload](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	return c.autoReloadFromWire(path, wa)
}

func (c *Client) ConfigureAutoReload(ctx context.Context, secretKey, customerID string, params AutoReloadParams) (*AutoReload, *apierror.Error) {
	path := "/customers/" + customerID + "/auto-reload"
	body := wireAutoReload{
		Enabled:         params.Enabled,
		PaymentMethodID: params.PaymentMethodID,
		ReloadAmount:    params.ReloadAmount,
		ReloadThreshold: params.ReloadThreshold,
	}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wa, aerr := decode[wireAutoReload](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	return c.autoReloadFromWire(path, wa)
}
