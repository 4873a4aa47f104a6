package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/validate"
)

// errorResponse is the canonical error envelope for all portal errors.
// Fields holds the per-field messages of a validation failure; Redirect is
// set when the browser should navigate (session expiry).
type errorResponse struct {
	Error    string            `json:"error"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the error taxonomy to deterministic HTTP status codes.
//   - Renders validation failures with their field-addressable messages.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Validation failures carry their field map; they never reached the
	// network.
	var inv *validate.Invalid
	if errors.As(err, &inv) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:  "Datos inválidos",
			Fields: inv.Fields,
		}
	}

	// Server-rejected requests surface the upstream's message (the gateway
	// already filled per-operation fallbacks).
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		code := ue.Status
		if code < 400 || code > 599 {
			code = http.StatusBadGateway
		}
		return code, errorResponse{Error: ue.Message}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "Credenciales inválidas"}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "Inicie sesión para continuar", Redirect: "/login"}
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, errorResponse{Error: "Sesión expirada", Redirect: "/login"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "Acceso no autorizado"}
	case errors.Is(err, domain.ErrShipmentNotFound):
		return http.StatusNotFound, errorResponse{Error: "Envío no encontrado"}
	case errors.Is(err, domain.ErrInvalidPayload):
		return http.StatusBadGateway, errorResponse{Error: "La estructura de datos recibida no es válida"}
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, errorResponse{Error: "Error de conexión. Intente nuevamente."}
	case errors.Is(err, domain.ErrNoProductTypeForWeight),
		errors.Is(err, domain.ErrAmbiguousProductType):
		// Catalog misconfiguration: surfaced, never silently ignored.
		log.Error().Err(err).Msg("product catalog misconfigured")
		return http.StatusInternalServerError, errorResponse{Error: "Catálogo de productos mal configurado"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
