package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
	"github.com/envialo/shipping-portal/internal/core/validate"
)

// ShipmentService runs the shipment-creation flow: automatic product-type
// assignment, field validation, then a single submission to the upstream.
// Nothing leaves the process until the draft is clean.
type ShipmentService struct {
	gateway ports.ShipmentGateway
	catalog ports.CatalogService
	rules   *validate.Rules
	log     zerolog.Logger
}

func NewShipmentService(gateway ports.ShipmentGateway, catalog ports.CatalogService, rules *validate.Rules, log zerolog.Logger) *ShipmentService {
	return &ShipmentService{gateway: gateway, catalog: catalog, rules: rules, log: log}
}

// Create validates and submits a coerced draft. The product type is derived
// from the weight, never chosen: whenever a positive weight is present the
// matching type overwrites the draft's selection before validation runs.
// Catalog configuration errors (overlapping or non-exhaustive weight bands)
// surface instead of being ignored.
func (s *ShipmentService) Create(ctx context.Context, token string, draft domain.ShipmentDraft) (*ports.CreateShipmentResult, error) {
	if draft.WeightGrams > 0 {
		types, err := s.catalog.ProductTypes(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("load product types: %w", err)
		}
		pt, err := domain.MatchProductType(types, draft.WeightGrams)
		if err != nil {
			s.log.Error().Err(err).Int("weight_grams", draft.WeightGrams).Msg("product catalog misconfigured")
			return nil, err
		}
		draft.ProductTypeID = pt.ID
	}

	if err := s.rules.Shipment(draft).AsError(); err != nil {
		return nil, err
	}

	result, err := s.gateway.CreateShipment(ctx, token, draft)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tracking_code", result.TrackingCode).
		Int("product_type_id", draft.ProductTypeID).
		Msg("shipment created")
	return result, nil
}

// ListAll backs the administrative view.
func (s *ShipmentService) ListAll(ctx context.Context, token string) ([]ports.ShipmentSummary, error) {
	return s.gateway.ListShipments(ctx, token)
}
