package ports

import (
	"context"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// CreateShipmentResult is the upstream's answer to a successful creation.
type CreateShipmentResult struct {
	ID           int    `json:"id"`
	TrackingCode string `json:"tracking_code"`
}

// TrackingShipment identifies the shipment a tracking query resolved to.
type TrackingShipment struct {
	ID            int    `json:"id"`
	TrackingCode  string `json:"tracking_code"`
	OriginID      int    `json:"origin_id"`
	DestinationID int    `json:"destination_id"`
	CreatedAt     string `json:"created_at"`
}

// TrackingPayload is the decoded success payload of a tracking query:
// shipment identity plus the unordered status-event collection. The gateway
// guarantees both parts were present and well-formed on the wire; an empty
// History is valid and means the shipment has no events yet.
type TrackingPayload struct {
	Shipment TrackingShipment
	History  []domain.StatusEvent
}

// ShipmentSummary is the list item for the administrative view.
type ShipmentSummary struct {
	ID            int    `json:"id"`
	TrackingCode  string `json:"tracking_code"`
	OriginID      int    `json:"origin_id"`
	DestinationID int    `json:"destination_id"`
	RecipientName string `json:"recipient_name"`
	CreatedAt     string `json:"created_at"`
}

// ShipmentGateway is the remote shipments API collaborator.
type ShipmentGateway interface {
	ListLocations(ctx context.Context, token string) ([]domain.Location, error)
	ListProductTypes(ctx context.Context, token string) ([]domain.ProductType, error)
	CreateShipment(ctx context.Context, token string, draft domain.ShipmentDraft) (*CreateShipmentResult, error)
	// GetTrackingHistory fetches the shipment and its raw status history for
	// a tracking code. Returns domain.ErrInvalidPayload when the success
	// payload violates the data contract.
	GetTrackingHistory(ctx context.Context, token, trackingCode string) (*TrackingPayload, error)
	// ListShipments backs the admin view.
	ListShipments(ctx context.Context, token string) ([]ShipmentSummary, error)
}
