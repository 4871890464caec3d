package ansa

import (
	"context"
	"net/http"

	"ansadash/api/internal/apierror"
)

func (c *Client) merchantFromWire(path string, wm *wireMerchant) (*Merchant, *apierror.Error) {
	m := &Merchant{
		ID:   wm.ID,
		Name: wm.Name,
		Metadata: MerchantMetadata{
			AutoReloadConfig: AutoReloadConfig{
				MinimumReloadAmount:    wm.Metadata.AutoReloadConfig.MinimumAutoReloadAmount,
				MaximumReloadAmount:    wm.Metadata.AutoReloadConfig.MaximumAutoReloadAmount,
				MinimumReloadThreshold: wm.Metadata.AutoReloadConfig.MinimumAutoReloadThreshold,
			},
		},
	}
	if wm.Metadata.Promotions != nil {
		promo := &PromotionConfig{
			Type:        wm.Metadata.Promotions.Type,
			RewardTiers: make([]RewardTier, 0, len(wm.Metadata.Promotions.RewardTiers)),
		}
		for _, tier := range wm.Metadata.Promotions.RewardTiers {
			promo.RewardTiers = append(promo.RewardTiers, RewardTier{
				MinTransactionRequirement: tier.MinTransactionRequirement,
				PromotionAmount:           tier.PromotionAmount,
			})
		}
		m.Metadata.PromotionConfig = promo
	}
	if aerr := c.checkShape(path, m); aerr != nil {
		return nil, aerr
	}
	return m, nil
}

func (c *Client) GetMerchant(ctx context.Context, secretKey, merchantID string) (*Merchant, *apierror.Error) {
	path := "/merchants/" + merchantID
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wm, aerr := decode[wireMerchant](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	return c.merchantFromWire(path, wm)
}

// UpdateMerchant replaces the promotion config; a nil PromoConfig clears it.
func (c *Client) UpdateMerchant(ctx context.Context, secretKey, merchantID string, params UpdateMerchantParams) (*Merchant, *apierror.Error) {
	path := "/merchants/" + merchantID

	body := wireUpdateMerchant{}
	if params.PromoConfig != nil {
		pc := &wirePromoConfig{
			PromoType:   params.PromoConfig.PromotionType,
			RewardTiers: make([]wirePromoTier, 0, len(params.PromoConfig.Tiers)),
		}
		for _, tier := range params.PromoConfig.Tiers {
			pc.RewardTiers = append(pc.RewardTiers, wirePromoTier{
				MinTransactionRequirement: tier.MinTransactionRequirement,
				PromoAmount:               tier.PromotionAmount,
			})
		}
		body.PromoConfig = pc
	}

	status, raw, aerr := c.do(ctx, http.MethodPut, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wm, aerr := decode[wireMerchant](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	return c.merchantFromWire(path, wm)
}

func (c *Client) GetMerchantInsights(ctx context.Context, secretKey, merchantID string) (*Insights, *apierror.Error) {
	path := "/merchants/" + merchantID + "/insights"
	status, raw, aerr := c.do(ctx, http.MethodGet, path, secretKey, nil, nil)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wi, aerr := decode[wireMerchantInsights](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	insights := &Insights{
		TotalUsers:                 wi.TotalUsers,
		TotalCustomerAddedBalance:  wi.TotalCustomerAddedBalance.Amount,
		TotalCustomerBalance:       wi.TotalCustomerBalance.Amount,
		TotalSettledBalance:        wi.TotalSettledBalance.Amount,
		TotalMerchantFundedBalance: wi.TotalMerchantFundedBalance.Amount,
	}
	if aerr := c.checkShape(path, insights); aerr != nil {
		return nil, aerr
	}
	return insights, nil
}

func (c *Client) FundCustomerBalance(ctx context.Context, secretKey string, params FundBalanceParams) (*FundedBalance, *apierror.Error) {
	const path = "/fund-customer-balance"
	body := wireFundBalance{
		CustomerID: params.CustomerID,
		Amount:     params.Amount,
		Currency:   params.Currency,
		Reason:     params.Reason,
	}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wf, aerr := decode[wireFundedBalance](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	funded := &FundedBalance{
		CustomerID:    wf.CustomerID,
		TransactionID: wf.TransactionID,
		Timestamp:     wf.Timestamp,
		CurrentBalance: Balance{
			Amount:   wf.CurrentBalance.Amount,
			Currency: wf.CurrentBalance.Currency,
		},
	}
	if aerr := c.checkShape(path, funded); aerr != nil {
		return nil, aerr
	}
	return funded, nil
}

func (c *Client) RefundBalance(ctx context.Context, secretKey string, params RefundBalanceParams) (*Refund, *apierror.Error) {
	const path = "/refunds/balance"
	body := wireRefundBalance{
		TransactionID: params.TransactionID,
		Amount:        params.Amount,
		Currency:      params.Currency,
	}
	status, raw, aerr := c.do(ctx, http.MethodPost, path, secretKey, nil, body)
	if aerr != nil {
		return nil, aerr
	}
	if status != http.StatusOK {
		return nil, c.upstreamErr(path, status, raw)
	}

	wr, aerr := decode[wireRefund](c, path, raw)
	if aerr != nil {
		return nil, aerr
	}
	refund := &Refund{
		ID:            wr.ID,
		TransactionID: wr.TransactionID,
		CustomerID:    wr.CustomerID,
		Amount:        wr.Amount,
		Currency:      wr.Currency,
		Status:        wr.Status,
		Type:          wr.Type,
		Reason:        wr.Reason,
		CreatedAt:     wr.Created,
		Metadata:      wr.Metadata,
	}
	if aerr := c.checkShape(path, refund); aerr != nil {
		return nil, aerr
	}
	return refund, nil
}
