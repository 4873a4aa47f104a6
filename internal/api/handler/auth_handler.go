package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/api/metrics"
	"github.com/envialo/shipping-portal/internal/api/middleware"
	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
	"github.com/envialo/shipping-portal/internal/core/validate"
)

// CookieSettings carries the session-cookie parameters the handler needs.
type CookieSettings struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles login, registration, logout, and the session view.
type AuthHandler struct {
	service ports.AuthService
	rules   *validate.Rules
	cookie  CookieSettings
}

func NewAuthHandler(service ports.AuthService, rules *validate.Rules, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{service: service, rules: rules, cookie: cookie}
}

type loginResponse struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Redirect string `json:"redirect"`
}

// Login authenticates against the upstream and starts a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      validate.LoginForm  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form validate.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.rules.Login(form).AsError(); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("login").Inc()
		return err
	}

	id, sess, err := h.service.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	middleware.SetCookie(c, h.cookie.Name, id, h.cookie.TTL, h.cookie.Secure)
	return c.JSON(http.StatusOK, loginResponse{
		Role:     sess.Role,
		Email:    sess.Email,
		Redirect: domain.DefaultView(sess.Role),
	})
}

// Register forwards an account creation to the upstream. No session is
// started; the user logs in afterwards.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      validate.RegisterForm  true  "Registration fields"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var form validate.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.rules.Register(form).AsError(); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("register").Inc()
		return err
	}

	err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Address:   form.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":  "Cuenta creada. Inicie sesión.",
		"redirect": "/login",
	})
}

// Logout clears the session state and expires the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if id, ok := c.Get(middleware.CtxSessionID).(string); ok && id != "" {
		if err := h.service.Logout(c.Request().Context(), id); err != nil {
			return err
		}
		metrics.SessionsClearedTotal.WithLabelValues("logout").Inc()
	}
	middleware.ExpireCookie(c, h.cookie.Name)
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/login"})
}

type sessionResponse struct {
	Role   string `json:"role"`
	Email  string `json:"email"`
	UserID int    `json:"user_id"`
}

// Session returns the current session's display fields. The token itself
// never leaves the portal.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Role:   sess.Role,
		Email:  sess.Email,
		UserID: sess.UserID,
	})
}

// LoginView and RegisterView are the public view probes the guards protect.

func (h *AuthHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "login"})
}

func (h *AuthHandler) RegisterView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "register"})
}
