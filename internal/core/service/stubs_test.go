package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared across the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubShipmentGateway struct {
	locations    []domain.Location
	locationsErr error

	types    []domain.ProductType
	typesErr error

	createResult *ports.CreateShipmentResult
	createErr    error
	lastDraft    domain.ShipmentDraft
	lastToken    string
	createCalls  int

	payload          *ports.TrackingPayload
	trackingErr      error
	lastTrackingCode string

	summaries []ports.ShipmentSummary
	listErr   error
}

func (g *stubShipmentGateway) ListLocations(_ context.Context, _ string) ([]domain.Location, error) {
	return g.locations, g.locationsErr
}

func (g *stubShipmentGateway) ListProductTypes(_ context.Context, _ string) ([]domain.ProductType, error) {
	return g.types, g.typesErr
}

func (g *stubShipmentGateway) CreateShipment(_ context.Context, token string, draft domain.ShipmentDraft) (*ports.CreateShipmentResult, error) {
	g.createCalls++
	g.lastToken = token
	g.lastDraft = draft
	return g.createResult, g.createErr
}

func (g *stubShipmentGateway) GetTrackingHistory(_ context.Context, _, trackingCode string) (*ports.TrackingPayload, error) {
	g.lastTrackingCode = trackingCode
	return g.payload, g.trackingErr
}

func (g *stubShipmentGateway) ListShipments(_ context.Context, _ string) ([]ports.ShipmentSummary, error) {
	return g.summaries, g.listErr
}

type stubCatalog struct {
	locations []domain.Location
	locsErr   error
	types     []domain.ProductType
	typesErr  error
}

func (c *stubCatalog) Locations(_ context.Context, _ string) ([]domain.Location, error) {
	return c.locations, c.locsErr
}

func (c *stubCatalog) ProductTypes(_ context.Context, _ string) ([]domain.ProductType, error) {
	return c.types, c.typesErr
}

type stubAuthGateway struct {
	token        string
	loginErr     error
	lastEmail    string
	lastPassword string

	registerErr  error
	lastRegister ports.RegisterInput
}

func (g *stubAuthGateway) Login(_ context.Context, email, password string) (string, error) {
	g.lastEmail = email
	g.lastPassword = password
	return g.token, g.loginErr
}

func (g *stubAuthGateway) Register(_ context.Context, in ports.RegisterInput) error {
	g.lastRegister = in
	return g.registerErr
}

type stubSessionStore struct {
	sessions map[string]domain.Session
	nextID   string
	initErr  error
	cleared  []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session), nextID: "sess-1"}
}

func (s *stubSessionStore) Init(_ context.Context, sess domain.Session) (string, error) {
	if s.initErr != nil {
		return "", s.initErr
	}
	s.sessions[s.nextID] = sess
	return s.nextID, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubSessionStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	s.cleared = append(s.cleared, id)
	return nil
}
