package v1

import (
	"strconv"

	"ansadash/api/internal/ansa"
	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCustomerRoutes(g *gin.RouterGroup) {
	g.GET("/customers", h.customersList)
	g.GET("/customers/search", h.customersSearch)
	g.GET("/customers/count", h.customersCount)
	g.GET("/customers/:customerId", h.customerGet)

	g.GET("/customers/:customerId/autoReload", h.autoReloadGet)
	g.POST("/customers/:customerId/autoReload", h.autoReloadConfigure)
	g.GET("/customers/:customerId/paymentMethods", h.paymentMethodsList)
	g.GET("/customers/:customerId/transactions", h.customerTransactions)

	g.GET("/customers/:customerId/virtualCards", h.virtualCardGet)
	g.PUT("/customers/:customerId/virtualCards", h.virtualCardUpdate)
	g.GET("/customers/:customerId/virtualCards/transactions", h.virtualCardTransactions)
	g.GET("/customers/:customerId/virtualCards/transactions/count", h.virtualCardTransactionsCount)
}

func parseLimit(c *gin.Context) (int, *apierror.Error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithAnnotation("limit", raw))
	}
	return limit, nil
}

func (h *Handler) customersList(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	limit, aerr := parseLimit(c)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	page, aerr := h.ansa.GetCustomers(c.Request.Context(), creds.MerchantSecretKey, c.Query("cursor"), limit)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, page)
}

func (h *Handler) customersSearch(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	params := ansa.SearchParams{
		CustomerID:  c.Query("customerId"),
		PhoneNumber: c.Query("phoneNumber"),
		Email:       c.Query("email"),
	}
	if params == (ansa.SearchParams{}) {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest))
		return
	}
	if err := h.validate.Struct(params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	customers, aerr := h.ansa.SearchCustomers(c.Request.Context(), creds.MerchantSecretKey, params)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, customers)
}

func (h *Handler) customersCount(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	count, aerr := h.ansa.CountCustomers(c.Request.Context(), creds.MerchantSecretKey)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, count)
}

func (h *Handler) customerGet(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	customerID := c.Param("customerId")

	if c.Query("details") == "true" {
		detailed, aerr := h.ansa.GetCustomerDetails(c.Request.Context(), creds.MerchantSecretKey, customerID)
		if aerr != nil {
			h.respondErr(c, aerr)
			return
		}
		respondData(c, detailed)
		return
	}

	customer, aerr := h.ansa.GetCustomer(c.Request.Context(), creds.MerchantSecretKey, customerID)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, customer)
}

func (h *Handler) autoReloadGet(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	settings, aerr := h.ansa.GetAutoReload(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"))
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, settings)
}

func (h *Handler) autoReloadConfigure(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	var params ansa.AutoReloadParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	settings, aerr := h.ansa.ConfigureAutoReload(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"), params)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, settings)
}

func (h *Handler) paymentMethodsList(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	methods, aerr := h.ansa.GetPaymentMethods(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"))
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, methods)
}

func (h *Handler) customerTransactions(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	query, aerr := h.transactionsQuery(c)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	page, aerr := h.ansa.GetCustomerTransactions(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"), query)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, page)
}

func (h *Handler) virtualCardGet(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	card, aerr := h.ansa.GetVirtualCard(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"))
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, card)
}

func (h *Handler) virtualCardUpdate(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	var params ansa.CardStateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(params); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	card, aerr := h.ansa.SetVirtualCardState(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"), params)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, card)
}

func (h *Handler) virtualCardTransactions(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	limit, aerr := parseLimit(c)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	page, aerr := h.ansa.GetVirtualCardTransactions(c.Request.Context(), creds.MerchantSecretKey,
		c.Param("customerId"), c.Query("cursor"), limit)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, page)
}

func (h *Handler) virtualCardTransactionsCount(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	count, aerr := h.ansa.CountVirtualCardTransactions(c.Request.Context(), creds.MerchantSecretKey, c.Param("customerId"))
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, count)
}
