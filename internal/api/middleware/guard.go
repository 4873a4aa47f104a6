package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// The navigation contract: unauthenticated access to protected views goes to
// login; authenticated access to public views goes to the role's default
// view; a view gated on a role the session lacks goes to the session's own
// default view.

// RequireAuth redirects unauthenticated requests to the login view.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentSession(c); !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// RequireRole gates a view on a specific role. Sessions with another role
// are sent to their own default view, not to login.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := CurrentSession(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			if sess.Role != role {
				return c.Redirect(http.StatusFound, domain.DefaultView(sess.Role))
			}
			return next(c)
		}
	}
}

// RedirectAuthenticated keeps signed-in users out of the login and register
// views by sending them to their role's default view.
func RedirectAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sess, ok := CurrentSession(c); ok {
				return c.Redirect(http.StatusFound, domain.DefaultView(sess.Role))
			}
			return next(c)
		}
	}
}
