package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

// CatalogService serves the reference data the shipment form needs. The
// upstream is asked first; deployments without catalog endpoints fall back
// to the built-in defaults the product originally shipped with. Session
// expiry always propagates — only a missing endpoint or an unreachable
// upstream triggers the fallback.
type CatalogService struct {
	gateway ports.ShipmentGateway
	log     zerolog.Logger
}

func NewCatalogService(gateway ports.ShipmentGateway, log zerolog.Logger) *CatalogService {
	return &CatalogService{gateway: gateway, log: log}
}

func (s *CatalogService) Locations(ctx context.Context, token string) ([]domain.Location, error) {
	locs, err := s.gateway.ListLocations(ctx, token)
	if err != nil {
		if !fallbackEligible(err) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("upstream locations unavailable, serving built-in catalog")
		return domain.DefaultLocations, nil
	}
	return locs, nil
}

func (s *CatalogService) ProductTypes(ctx context.Context, token string) ([]domain.ProductType, error) {
	types, err := s.gateway.ListProductTypes(ctx, token)
	if err != nil {
		if !fallbackEligible(err) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("upstream product types unavailable, serving built-in catalog")
		return domain.DefaultProductTypes, nil
	}
	return types, nil
}

func fallbackEligible(err error) bool {
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return true
	}
	var ue *domain.UpstreamError
	return errors.As(err, &ue) && ue.Status == http.StatusNotFound
}
