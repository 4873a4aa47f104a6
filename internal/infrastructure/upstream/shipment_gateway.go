package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

const (
	locationsPath    = "/api/v1/locations"
	productTypesPath = "/api/v1/product-types"
	shipmentsPath    = "/api/v1/shipments"
)

// Per-operation fallback messages, surfaced when the upstream rejects a
// request without a structured message of its own.
const (
	createFallback   = "Error al crear el envío"
	trackingFallback = "Error al consultar el estado del envío"
)

// ShipmentGateway talks to the upstream shipment and catalog endpoints.
type ShipmentGateway struct {
	client *Client
}

func NewShipmentGateway(client *Client) *ShipmentGateway {
	return &ShipmentGateway{client: client}
}

func (g *ShipmentGateway) ListLocations(ctx context.Context, token string) ([]domain.Location, error) {
	var out []domain.Location
	if err := g.client.do(ctx, http.MethodGet, locationsPath, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ShipmentGateway) ListProductTypes(ctx context.Context, token string) ([]domain.ProductType, error) {
	var out []domain.ProductType
	if err := g.client.do(ctx, http.MethodGet, productTypesPath, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ShipmentGateway) CreateShipment(ctx context.Context, token string, draft domain.ShipmentDraft) (*ports.CreateShipmentResult, error) {
	var out ports.CreateShipmentResult
	if err := g.client.do(ctx, http.MethodPost, shipmentsPath, token, draft, &out); err != nil {
		return nil, withFallback(err, createFallback)
	}
	return &out, nil
}

func (g *ShipmentGateway) ListShipments(ctx context.Context, token string) ([]ports.ShipmentSummary, error) {
	var out []ports.ShipmentSummary
	if err := g.client.do(ctx, http.MethodGet, shipmentsPath, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// trackingEnvelope keeps the payload parts raw so the data contract can be
// checked field by field before anything is rendered.
type trackingEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Shipment      json.RawMessage `json:"shipment"`
		StatusHistory json.RawMessage `json:"status_history"`
	} `json:"data"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (g *ShipmentGateway) GetTrackingHistory(ctx context.Context, token, trackingCode string) (*ports.TrackingPayload, error) {
	path := fmt.Sprintf("%s/tracking/%s/history", shipmentsPath, url.PathEscape(trackingCode))

	var env trackingEnvelope
	if err := g.client.do(ctx, http.MethodGet, path, token, nil, &env); err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.Status == http.StatusNotFound {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, withFallback(err, trackingFallback)
	}

	if env.Status != "success" {
		msg := env.Error
		if msg == "" && env.Message != "" {
			msg = "Error: " + env.Message
		}
		if msg == "" {
			msg = trackingFallback
		}
		return nil, &domain.UpstreamError{Status: http.StatusOK, Message: msg}
	}

	// Data-contract checks: a success payload must carry the shipment object
	// and an actual array for the history. Violations fail the whole query;
	// they are not an empty state.
	if isAbsent(env.Data.Shipment) {
		return nil, fmt.Errorf("%w: missing shipment object", domain.ErrInvalidPayload)
	}
	if isAbsent(env.Data.StatusHistory) {
		return nil, fmt.Errorf("%w: missing status history", domain.ErrInvalidPayload)
	}

	var history []domain.StatusEvent
	if err := json.Unmarshal(env.Data.StatusHistory, &history); err != nil {
		return nil, fmt.Errorf("%w: status history is not a collection", domain.ErrInvalidPayload)
	}

	var shipment ports.TrackingShipment
	if err := json.Unmarshal(env.Data.Shipment, &shipment); err != nil {
		return nil, fmt.Errorf("%w: malformed shipment object", domain.ErrInvalidPayload)
	}
	if shipment.ID == 0 || shipment.TrackingCode == "" {
		return nil, fmt.Errorf("%w: incomplete shipment identity", domain.ErrInvalidPayload)
	}

	return &ports.TrackingPayload{Shipment: shipment, History: history}, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// withFallback fills the per-operation message on structured rejections the
// upstream left blank. Transport and session errors pass through untouched.
func withFallback(err error, fallback string) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Message == "" {
		ue.Message = fallback
	}
	return err
}
