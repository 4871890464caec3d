package v1

import (
	"net/http"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAuthRoutes(g *gin.RouterGroup) {
	authGroup := g.Group("/auth")

	authGroup.POST("/signin", h.signinRateLimit(), h.signin)
	authGroup.GET("/callback", h.signinCallback)
	authGroup.POST("/signout", h.signout)
}

func (h *Handler) signin(c *gin.Context) {
	var data struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := c.ShouldBindJSON(&data); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}
	if err := h.validate.Struct(data); err != nil {
		h.respondErr(c, apierror.BadRequest(domain.ErrMsgBadRequest, apierror.WithCause(err)))
		return
	}

	if aerr := h.services.Sessions.StartSignin(h.db, data.Email); aerr != nil {
		h.respondErr(c, aerr)
		return
	}

	h.metrics.RecordSigninStarted()
	// same response whether or not the address exists
	respondData(c, gin.H{"sent": true})
}

// signinCallback lands from the emailed link, so failures redirect back to
// the sign-in page instead of rendering a bare error body.
func (h *Handler) signinCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/signin?error=missing_code")
		return
	}

	session, aerr := h.services.Sessions.ExchangeCode(h.db, code)
	if aerr != nil {
		h.log.Warn("signin code exchange failed", "error", aerr.Error())
		c.Redirect(http.StatusFound, "/signin?error=invalid_code")
		return
	}

	h.metrics.RecordSessionCreated()
	h.setSessionCookie(c, session.Token, h.config.Session.Lifetime)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) signout(c *gin.Context) {
	token, _ := c.Cookie(h.config.Session.CookieName)
	if token != "" {
		if err := h.services.Sessions.Signout(h.db, token); err != nil {
			h.respondErr(c, apierror.Internal("signout failed", apierror.WithCause(err)))
			return
		}
	}
	h.clearSessionCookie(c)
	respondData(c, gin.H{"signedOut": true})
}
