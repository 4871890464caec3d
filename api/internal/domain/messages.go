package domain

const (
	ErrMsgNoSession           = "no client session found"
	ErrMsgSuperadminRequired  = "superadmin required"
	ErrMsgMerchantKeys        = "could not get merchant keys"
	ErrMsgMerchantInfo        = "error fetching merchant info"
	ErrMsgMerchantNotAssigned = "merchant is not assigned to this user"

	ErrMsgBadRequest          = "bad request"
	ErrMsgInternalServerError = "internal server error"
	ErrMsgRateLimitExceeded   = "rate limit exceeded"

	ErrMsgAnsaNetwork  = "ansa api network issue"
	ErrMsgAnsaBadShape = "bad response from ansa"
)
