package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/api/middleware"
	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub services and request helpers shared across the handler tests
// ---------------------------------------------------------------------------

type stubAuthService struct {
	sessionID string
	session   *domain.Session
	loginErr  error

	registerErr  error
	lastRegister ports.RegisterInput

	loggedOut []string
	logoutErr error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.Session, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.sessionID, s.session, nil
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) error {
	s.lastRegister = in
	return s.registerErr
}

func (s *stubAuthService) Logout(_ context.Context, sessionID string) error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

type stubShipmentService struct {
	result    *ports.CreateShipmentResult
	createErr error
	lastDraft domain.ShipmentDraft
	lastToken string

	summaries []ports.ShipmentSummary
	listErr   error
}

func (s *stubShipmentService) Create(_ context.Context, token string, draft domain.ShipmentDraft) (*ports.CreateShipmentResult, error) {
	s.lastToken = token
	s.lastDraft = draft
	return s.result, s.createErr
}

func (s *stubShipmentService) ListAll(_ context.Context, _ string) ([]ports.ShipmentSummary, error) {
	return s.summaries, s.listErr
}

type stubCatalogService struct {
	locations []domain.Location
	locsErr   error
	types     []domain.ProductType
	typesErr  error
}

func (s *stubCatalogService) Locations(_ context.Context, _ string) ([]domain.Location, error) {
	return s.locations, s.locsErr
}

func (s *stubCatalogService) ProductTypes(_ context.Context, _ string) ([]domain.ProductType, error) {
	return s.types, s.typesErr
}

type stubTrackingService struct {
	view     *domain.TrackingView
	err      error
	lastCode string
}

func (s *stubTrackingService) Track(_ context.Context, _, trackingCode string) (*domain.TrackingView, error) {
	s.lastCode = trackingCode
	return s.view, s.err
}

// jsonRequest builds an echo context carrying a JSON body, optionally with an
// authenticated session already injected the way the middleware would.
func jsonRequest(t *testing.T, method, target, body string, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if sess != nil {
		c.Set(middleware.CtxSessionID, "sess-1")
		c.Set(middleware.CtxSession, sess)
		c.Set(middleware.CtxRole, sess.Role)
	}
	return c, rec
}

func userSession() *domain.Session {
	return &domain.Session{Token: "tok", Role: domain.RoleUser, Email: "laura@example.com", UserID: 42}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
