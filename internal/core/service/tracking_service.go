package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

// TrackingService answers tracking queries: it fetches the shipment and its
// raw status history from the upstream and reconciles the unordered event
// collection into a display-ready view.
type TrackingService struct {
	gateway ports.ShipmentGateway
	log     zerolog.Logger
}

func NewTrackingService(gateway ports.ShipmentGateway, log zerolog.Logger) *TrackingService {
	return &TrackingService{gateway: gateway, log: log}
}

func (s *TrackingService) Track(ctx context.Context, token, trackingCode string) (*domain.TrackingView, error) {
	payload, err := s.gateway.GetTrackingHistory(ctx, token, trackingCode)
	if err != nil {
		return nil, err
	}

	view := Reconcile(payload.Shipment, payload.History)
	s.log.Debug().
		Str("tracking_code", trackingCode).
		Int("events", len(view.History)).
		Msg("tracking history reconciled")
	return view, nil
}

// Reconcile orders the server's unordered status events most-recent-first
// and selects the current status. The sort never fails: an unparseable
// timestamp keys as the zero time, so such events sink to the end of the
// history instead of aborting the query. An empty collection is valid and
// yields a nil current status with an empty history.
func Reconcile(shipment ports.TrackingShipment, events []domain.StatusEvent) *domain.TrackingView {
	type keyed struct {
		ev domain.StatusEvent
		at time.Time
	}
	ks := make([]keyed, len(events))
	for i, ev := range events {
		ks[i] = keyed{ev: ev, at: ev.OccurredAt()}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].at.After(ks[j].at) })

	history := make([]domain.StatusView, len(ks))
	for i, k := range ks {
		history[i] = displayView(k.ev)
	}

	view := &domain.TrackingView{
		ID:            shipment.ID,
		TrackingCode:  shipment.TrackingCode,
		OriginID:      shipment.OriginID,
		DestinationID: shipment.DestinationID,
		CreatedAt:     shipment.CreatedAt,
		History:       history,
	}
	if len(history) > 0 {
		current := history[0]
		view.CurrentStatus = &current
	}
	return view
}

// displayView applies the fallback text for fields the upstream may omit.
func displayView(e domain.StatusEvent) domain.StatusView {
	comment := domain.FallbackComment
	if e.Comment != nil && strings.TrimSpace(*e.Comment) != "" {
		comment = *e.Comment
	}
	user := e.UserName
	if user == "" {
		user = domain.FallbackUserName
	}
	return domain.StatusView{
		ID:        e.ID,
		Status:    e.Status,
		Comment:   comment,
		Timestamp: e.Timestamp,
		UserName:  user,
	}
}
