package ports

import (
	"context"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// AuthService drives the portal's session lifecycle against the auth
// collaborator.
type AuthService interface {
	// Login authenticates, derives the role from the returned token, and
	// initialises a session. The returned id is the browser's session handle.
	Login(ctx context.Context, email, password string) (sessionID string, s *domain.Session, err error)
	Register(ctx context.Context, in RegisterInput) error
	Logout(ctx context.Context, sessionID string) error
}

// CatalogService exposes the reference data the shipment form needs.
type CatalogService interface {
	Locations(ctx context.Context, token string) ([]domain.Location, error)
	ProductTypes(ctx context.Context, token string) ([]domain.ProductType, error)
}

// ShipmentService validates drafts, auto-assigns the product type, and
// submits to the upstream.
type ShipmentService interface {
	Create(ctx context.Context, token string, draft domain.ShipmentDraft) (*CreateShipmentResult, error)
	ListAll(ctx context.Context, token string) ([]ShipmentSummary, error)
}

// TrackingService turns a tracking code into a display-ready view.
type TrackingService interface {
	Track(ctx context.Context, token, trackingCode string) (*domain.TrackingView, error)
}
