package v1

import (
	"net/http"
	"sync"
	"time"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/domain"
	"ansadash/api/internal/service"
	"ansadash/pkg/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const ctxSessionKey = "session"

// signin attempts allowed per IP: small burst, slow refill
const (
	signinBurst  = 5
	signinRefill = time.Minute / 2
	// an entry idle this long has refilled its full burst, so evicting it
	// grants no extra attempts
	signinIdleAfter  = signinBurst * signinRefill
	signinSweepEvery = time.Minute
)

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// signinLimiter tracks a limiter per source IP and sweeps idle entries so a
// source cycling spoofed addresses cannot grow the map without bound.
type signinLimiter struct {
	mu        sync.Mutex
	perIP     map[string]*ipLimiter
	lastSweep time.Time
}

func newSigninLimiter() *signinLimiter {
	return &signinLimiter{perIP: map[string]*ipLimiter{}, lastSweep: time.Now()}
}

func (l *signinLimiter) allow(ip string) bool {
	return l.allowAt(ip, time.Now())
}

func (l *signinLimiter) allowAt(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= signinSweepEvery {
		for key, entry := range l.perIP {
			if now.Sub(entry.lastSeen) >= signinIdleAfter {
				delete(l.perIP, key)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.perIP[ip]
	if !ok {
		entry = &ipLimiter{lim: rate.NewLimiter(rate.Every(signinRefill), signinBurst)}
		l.perIP[ip] = entry
	}
	entry.lastSeen = now
	return entry.lim.Allow()
}

func (h *Handler) signinRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.limiter.allow(c.ClientIP()) {
			h.log.Warn("signin rate limit exceeded", "ip", c.ClientIP())
			c.String(http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded)
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionMiddleware loads the session behind the cookie and slides its
// expiry. Requests without a live session never reach the route handlers.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(h.config.Session.CookieName)

		session, err := h.services.Sessions.Get(h.db, token)
		if err != nil {
			h.respondErr(c, apierror.Internal("session lookup failed", apierror.WithCause(err)))
			return
		}
		if session == nil {
			h.respondErr(c, apierror.Auth(domain.ErrMsgNoSession))
			return
		}

		if err := h.services.Sessions.RefreshIfNeeded(h.db, session); err != nil {
			// a failed refresh is not worth failing the request over
			h.log.Warn("session refresh failed", "error", err.Error())
		}
		h.setSessionCookie(c, session.Token, time.Until(session.ExpiresAt))

		c.Set(ctxSessionKey, session)
		c.Next()
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.Session.CookieName, token, int(maxAge.Seconds()), "/", "", h.config.ProdEnv, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.Session.CookieName, "", -1, "/", "", h.config.ProdEnv, true)
}

func (h *Handler) session(c *gin.Context) *domain.Sessions {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	session, _ := utils.SafeCast[*domain.Sessions](v)
	return session
}

// credentials adapts the session on the context into merchant credentials.
func (h *Handler) credentials(c *gin.Context, opts service.ResolveOptions) (*service.MerchantCredentials, *apierror.Error) {
	return h.services.Auth.ResolveMerchant(h.db, h.session(c), opts)
}

func (h *Handler) requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.RecordRequest(route, c.Writer.Status(), time.Since(start))
	}
}
