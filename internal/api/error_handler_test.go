package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/validate"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	e.HTTPErrorHandler(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_Taxonomy(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     int
		wantMsg      string
		wantRedirect string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciales inválidas", ""},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "Inicie sesión para continuar", "/login"},
		{"session expired", domain.ErrSessionExpired, http.StatusUnauthorized, "Sesión expirada", "/login"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Acceso no autorizado", ""},
		{"shipment not found", domain.ErrShipmentNotFound, http.StatusNotFound, "Envío no encontrado", ""},
		{"invalid payload", domain.ErrInvalidPayload, http.StatusBadGateway, "La estructura de datos recibida no es válida", ""},
		{"upstream unavailable", domain.ErrUpstreamUnavailable, http.StatusBadGateway, "Error de conexión. Intente nuevamente.", ""},
		{"catalog misconfigured", domain.ErrNoProductTypeForWeight, http.StatusInternalServerError, "Catálogo de productos mal configurado", ""},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := render(t, tt.err)
			if code != tt.wantCode {
				t.Errorf("status = %d, want %d", code, tt.wantCode)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", body.Error, tt.wantMsg)
			}
			if body.Redirect != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", body.Redirect, tt.wantRedirect)
			}
		})
	}
}

func TestErrorHandler_WrappedErrorsStillResolve(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusBadGateway).SetInternal(domain.ErrUpstreamUnavailable))

	// An echo.HTTPError takes precedence even when it wraps a domain error.
	if code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", code)
	}
	_ = body
}

func TestErrorHandler_ValidationCarriesFieldMap(t *testing.T) {
	err := validate.FieldErrors{
		"weight_grams":   "El peso debe ser mayor a 0",
		"destination_id": "La ciudad de origen y destino deben ser diferentes",
	}.AsError()

	code, body := render(t, err)
	if code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", code)
	}
	if body.Error != "Datos inválidos" {
		t.Errorf("error = %q", body.Error)
	}
	if body.Fields["weight_grams"] != "El peso debe ser mayor a 0" {
		t.Errorf("fields = %v", body.Fields)
	}
}

func TestErrorHandler_UpstreamMessageSurfaces(t *testing.T) {
	code, body := render(t, &domain.UpstreamError{Status: http.StatusConflict, Message: "el correo ya está registrado"})
	if code != http.StatusConflict {
		t.Errorf("status = %d, want 409", code)
	}
	if body.Error != "el correo ya está registrado" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestErrorHandler_OutOfRangeUpstreamStatusClamped(t *testing.T) {
	code, _ := render(t, &domain.UpstreamError{Status: 200, Message: "raro"})
	if code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 for a non-error upstream status", code)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
	if body.Error != "Not Found" {
		t.Errorf("error = %q", body.Error)
	}
}
