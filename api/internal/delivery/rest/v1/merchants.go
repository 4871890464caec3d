package v1

import (
	"ansadash/api/internal/ansa"
	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initMerchantRoutes(g *gin.RouterGroup) {
	g.GET("/merchants", h.merchantGet)
	g.GET("/merchants/insights", h.merchantInsights)
	g.PUT("/merchants/:merchantId", h.merchantUpdate)
	g.POST("/merchants/select", h.merchantSelect)
	g.POST("/merchants/fundCustomerBalance", h.fundCustomerBalance)
	g.POST("/merchants/refunds/balance", h.refundBalance)
}

// merchantSelect switches which assigned merchant a superadmin acts as.
func (h *Handler) merchantSelect(c *gin.Context) {
	var data struct {
		MerchantUuid string `json:"merchantUuid" validate:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(data); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	if aerr := h.services.Auth.SelectMerchant(h.db, h.session(c), data.MerchantUuid); aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, gin.H{"selected": data.MerchantUuid})
}

func (h *Handler) merchantGet(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	merchant, aerr := h.ansa.GetMerchant(c.Request.Context(), creds.MerchantSecretKey, creds.MerchantID)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, merchant)
}

func (h *Handler) merchantInsights(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	insights, aerr := h.ansa.GetMerchantInsights(c.Request.Context(), creds.MerchantSecretKey, creds.MerchantID)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, insights)
}

// merchantUpdate replaces the promotion config. The path merchant must be
// the one the session resolved to; no cross-merchant writes.
func (h *Handler) merchantUpdate(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	if c.Param("merchantId") != creds.MerchantID {
		h.respondErr(c, apierror.Auth("merchant mismatch",
			apierror.WithLabel(apierror.LABEL_MERCHANT_ID, c.Param("merchantId"))))
		return
	}

	var params ansa.UpdateMerchantParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	merchant, aerr := h.ansa.UpdateMerchant(c.Request.Context(), creds.MerchantSecretKey, creds.MerchantID, params)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, merchant)
}

func (h *Handler) fundCustomerBalance(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	var params ansa.FundBalanceParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	funded, aerr := h.ansa.FundCustomerBalance(c.Request.Context(), creds.MerchantSecretKey, params)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, funded)
}

func (h *Handler) refundBalance(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	var params ansa.RefundBalanceParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	refund, aerr := h.ansa.RefundBalance(c.Request.Context(), creds.MerchantSecretKey, params)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, refund)
}
