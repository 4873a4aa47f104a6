package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/api/metrics"
	"github.com/envialo/shipping-portal/internal/api/middleware"
	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
	"github.com/envialo/shipping-portal/internal/core/validate"
)

// ShipmentHandler handles the shipment form view, shipment creation, and
// the admin listing.
type ShipmentHandler struct {
	shipments ports.ShipmentService
	catalog   ports.CatalogService
}

func NewShipmentHandler(shipments ports.ShipmentService, catalog ports.CatalogService) *ShipmentHandler {
	return &ShipmentHandler{shipments: shipments, catalog: catalog}
}

type shipmentFormView struct {
	View         string               `json:"view"`
	Locations    []domain.Location    `json:"locations"`
	ProductTypes []domain.ProductType `json:"product_types"`
}

// NewForm returns the reference data the shipment-creation form needs.
//
// @Summary      Shipment form data
// @Tags         shipments
// @Produce      json
// @Success      200  {object}  shipmentFormView
// @Failure      401  {object}  map[string]string
// @Router       /shipments/new [get]
func (h *ShipmentHandler) NewForm(c echo.Context) error {
	sess, _ := middleware.CurrentSession(c)
	ctx := c.Request().Context()

	locations, err := h.catalog.Locations(ctx, sess.Token)
	if err != nil {
		return err
	}
	types, err := h.catalog.ProductTypes(ctx, sess.Token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shipmentFormView{
		View:         "shipment_form",
		Locations:    locations,
		ProductTypes: types,
	})
}

// Create validates a submitted draft and forwards it upstream.
//
// @Summary      Create a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body      validate.ShipmentForm  true  "Shipment draft (numeric fields as text)"
// @Success      201   {object}  ports.CreateShipmentResult
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var form validate.ShipmentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, _ := middleware.CurrentSession(c)
	result, err := h.shipments.Create(c.Request().Context(), sess.Token, form.Draft())
	if err != nil {
		var inv *validate.Invalid
		if errors.As(err, &inv) {
			metrics.ValidationFailuresTotal.WithLabelValues("shipment").Inc()
		} else {
			metrics.ShipmentsSubmittedTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.ShipmentsSubmittedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, result)
}

type adminView struct {
	View      string                  `json:"view"`
	Shipments []ports.ShipmentSummary `json:"shipments"`
}

// AdminList backs the administrative view.
//
// @Summary      List all shipments (admin)
// @Tags         shipments
// @Produce      json
// @Success      200  {object}  adminView
// @Failure      403  {object}  map[string]string
// @Router       /admin [get]
func (h *ShipmentHandler) AdminList(c echo.Context) error {
	sess, _ := middleware.CurrentSession(c)
	summaries, err := h.shipments.ListAll(c.Request().Context(), sess.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminView{View: "admin", Shipments: summaries})
}
