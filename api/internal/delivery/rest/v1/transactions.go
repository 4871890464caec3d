package v1

import (
	"ansadash/api/internal/ansa"
	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initTransactionRoutes(g *gin.RouterGroup) {
	g.GET("/transactions", h.transactionsList)
	g.GET("/transactions/count", h.transactionsCount)
	g.GET("/transactions/:transactionId", h.transactionGet)
	g.GET("/transactions/:transactionId/refunds", h.transactionRefunds)
}

func (h *Handler) transactionsQuery(c *gin.Context) (ansa.TransactionsQuery, *apierror.Error) {
	limit, aerr := parseLimit(c)
	if aerr != nil {
		return ansa.TransactionsQuery{}, aerr
	}

	query := ansa.TransactionsQuery{
		Cursor:            c.Query("cursor"),
		Limit:             limit,
		TransactionType:   c.Query("transactionType"),
		CreatedAtOrBefore: c.Query("createdAtOrBefore"),
		CreatedAtOrAfter:  c.Query("createdAtOrAfter"),
		Label:             c.Query("label"),
		Direction:         c.Query("direction"),
	}
	if err := h.validate.Struct(query); err != nil {
		return ansa.TransactionsQuery{}, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err))
	}
	return query, nil
}

func (h *Handler) transactionsList(c *gin.Context) {
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

	page, aerr := h.ansa.GetTransactions(c.Request.Context(), creds.MerchantSecretKey, query)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, page)
}

func (h *Handler) transactionsCount(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	count, aerr := h.ansa.CountTransactions(c.Request.Context(), creds.MerchantSecretKey)
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, count)
}

func (h *Handler) transactionGet(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	transaction, aerr := h.ansa.GetTransaction(c.Request.Context(), creds.MerchantSecretKey, c.Param("transactionId"))
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, transaction)
}

func (h *Handler) transactionRefunds(c *gin.Context) {
	creds, aerr := h.credentials(c, service.ResolveOptions{})
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	refunds, aerr := h.ansa.GetTransactionRefunds(c.Request.Context(), creds.MerchantSecretKey, c.Param("transactionId"))
	if aerr != nil {
		h.respondErr(c, aerr)
		return
	}
	respondData(c, refunds)
}
