package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/api/metrics"
	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

// Context keys injected by the Session middleware.
const (
	CtxSessionID = "session_id"
	CtxSession   = "session"
	CtxRole      = "role"
)

// Session resolves the session cookie against the store and injects the
// session state into the request context. Requests without a usable session
// pass through unauthenticated; the guards decide what that means per route.
//
// When a downstream call reports domain.ErrSessionExpired the middleware
// clears the persisted state and expires the cookie before the error
// reaches the central handler: session expiry is fatal for the session and
// never retried.
func Session(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				sess, err := store.Get(c.Request().Context(), cookie.Value)
				switch {
				case err == nil:
					c.Set(CtxSessionID, cookie.Value)
					c.Set(CtxSession, sess)
					c.Set(CtxRole, sess.Role)
				case errors.Is(err, domain.ErrSessionNotFound):
					// Stale cookie: treat as unauthenticated.
					ExpireCookie(c, cookieName)
				default:
					return err
				}
			}

			err := next(c)
			if err != nil && errors.Is(err, domain.ErrSessionExpired) {
				if id, ok := c.Get(CtxSessionID).(string); ok && id != "" {
					_ = store.Clear(c.Request().Context(), id)
				}
				ExpireCookie(c, cookieName)
				metrics.SessionsClearedTotal.WithLabelValues("expired").Inc()
			}
			return err
		}
	}
}

// CurrentSession returns the session injected by the Session middleware.
func CurrentSession(c echo.Context) (*domain.Session, bool) {
	sess, ok := c.Get(CtxSession).(*domain.Session)
	return sess, ok && sess != nil
}

// SetCookie issues the session cookie for a freshly initialised session.
func SetCookie(c echo.Context, name, sessionID string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ExpireCookie removes the session cookie.
func ExpireCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
