package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/api/metrics"
	"github.com/envialo/shipping-portal/internal/api/middleware"
	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
	"github.com/envialo/shipping-portal/internal/core/validate"
)

// TrackingHandler answers tracking queries.
type TrackingHandler struct {
	tracking ports.TrackingService
	rules    *validate.Rules
}

func NewTrackingHandler(tracking ports.TrackingService, rules *validate.Rules) *TrackingHandler {
	return &TrackingHandler{tracking: tracking, rules: rules}
}

// Track validates the tracking code, queries the upstream, and returns the
// reconciled view: current status plus the ordered history.
//
// @Summary      Track a shipment
// @Tags         tracking
// @Produce      json
// @Param        code  path      string  true  "Tracking code"
// @Success      200   {object}  domain.TrackingView
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /tracking/{code} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	code := c.Param("code")
	if err := h.rules.Tracking(code).AsError(); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("tracking").Inc()
		return err
	}

	sess, _ := middleware.CurrentSession(c)
	view, err := h.tracking.Track(c.Request().Context(), sess.Token, strings.TrimSpace(code))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShipmentNotFound):
			metrics.TrackingQueriesTotal.WithLabelValues("not_found").Inc()
		case errors.Is(err, domain.ErrInvalidPayload):
			metrics.TrackingQueriesTotal.WithLabelValues("malformed_payload").Inc()
		default:
			metrics.TrackingQueriesTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.TrackingQueriesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, view)
}
