// Package validate implements the portal's field validation rules on top of
// go-playground/validator. Every rule is checked locally before anything
// reaches the network; the result is a field-addressable error map so the
// form layer can surface each message next to its input.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// FieldErrors maps a form field name to the first violated rule's message.
// A form is submittable only when the map is empty.
type FieldErrors map[string]string

// Valid reports whether no rule was violated.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// Rules is the validation engine. All rule sets run through one
// validator.Validate instance with field names taken from the `form` tag.
type Rules struct {
	v *validator.Validate
}

// New builds a Rules engine ready for use.
func New() *Rules {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Rules{v: v}
}

// Login validates login credentials.
func (r *Rules) Login(f LoginForm) FieldErrors {
	return r.collect(f)
}

// Register validates the registration form, including the password
// confirmation cross-field rule.
func (r *Rules) Register(f RegisterForm) FieldErrors {
	return r.collect(f)
}

// Tracking validates a tracking-code query. The code is trimmed before the
// rules run, so a whitespace-only entry fails as empty.
func (r *Rules) Tracking(code string) FieldErrors {
	return r.collect(TrackingForm{TrackingCode: strings.TrimSpace(code)})
}

// shipmentRules is the rule carrier for a coerced draft. DestinationID's
// nefield rule pins the origin-equals-destination violation to the
// destination field.
type shipmentRules struct {
	OriginID          int    `form:"origin_id" validate:"gt=0"`
	DestinationID     int    `form:"destination_id" validate:"gt=0,nefield=OriginID"`
	ProductTypeID     int    `form:"product_type_id" validate:"gt=0"`
	WeightGrams       int    `form:"weight_grams" validate:"gt=0"`
	WidthCm           int    `form:"width_cm" validate:"gte=1"`
	HeightCm          int    `form:"height_cm" validate:"gte=1"`
	LengthCm          int    `form:"length_cm" validate:"gte=1"`
	RecipientName     string `form:"recipient_name" validate:"min=2"`
	RecipientAddress  string `form:"recipient_address" validate:"min=3"`
	RecipientPhone    string `form:"recipient_phone" validate:"min=7"`
	RecipientDocument string `form:"recipient_document" validate:"required"`
}

// Shipment validates an already-coerced draft.
func (r *Rules) Shipment(d domain.ShipmentDraft) FieldErrors {
	return r.collect(shipmentRules{
		OriginID:          d.OriginID,
		DestinationID:     d.DestinationID,
		ProductTypeID:     d.ProductTypeID,
		WeightGrams:       d.WeightGrams,
		WidthCm:           d.WidthCm,
		HeightCm:          d.HeightCm,
		LengthCm:          d.LengthCm,
		RecipientName:     d.RecipientName,
		RecipientAddress:  d.RecipientAddress,
		RecipientPhone:    d.RecipientPhone,
		RecipientDocument: d.RecipientDocument,
	})
}

// collect runs the struct rules and converts validator's output to
// FieldErrors. validator reports at most one violated tag per field, which
// matches the first-violated-rule-per-field contract.
func (r *Rules) collect(i any) FieldErrors {
	err := r.v.Struct(i)
	if err == nil {
		return FieldErrors{}
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// validator only returns non-ValidationErrors for broken rule
		// definitions; treat it as a form-wide failure.
		return FieldErrors{"form": err.Error()}
	}

	fe := make(FieldErrors, len(ve))
	for _, f := range ve {
		if _, seen := fe[f.Field()]; seen {
			continue
		}
		fe[f.Field()] = message(f)
	}
	return fe
}

// fieldMessages is the product's Spanish copy for each field and rule. The
// "*" entry is the field's message for any remaining tag.
var fieldMessages = map[string]map[string]string{
	"email":              {"*": "Correo inválido"},
	"password":           {"min": "Mínimo 6 caracteres"},
	"first_name":         {"required": "Campo obligatorio"},
	"last_name":          {"required": "Campo obligatorio"},
	"confirmPassword":    {"required": "Campo obligatorio", "eqfield": "Las contraseñas no coinciden"},
	"trackingCode":       {"required": "El código de seguimiento es requerido", "min": "El código debe tener al menos 4 caracteres"},
	"origin_id":          {"gt": "Seleccione una ciudad de origen"},
	"destination_id":     {"gt": "Seleccione una ciudad de destino", "nefield": "La ciudad de origen y destino deben ser diferentes"},
	"product_type_id":    {"gt": "Seleccione un tipo de producto"},
	"weight_grams":       {"gt": "El peso debe ser mayor a 0"},
	"width_cm":           {"gte": "El ancho debe ser mayor a 0"},
	"height_cm":          {"gte": "El alto debe ser mayor a 0"},
	"length_cm":          {"gte": "El largo debe ser mayor a 0"},
	"recipient_name":     {"min": "El nombre debe tener al menos 2 caracteres"},
	"recipient_address":  {"min": "Ingrese una dirección válida"},
	"recipient_phone":    {"min": "El teléfono debe tener al menos 7 caracteres"},
	"recipient_document": {"required": "El documento es requerido"},
}

func message(f validator.FieldError) string {
	if byTag, ok := fieldMessages[f.Field()]; ok {
		if msg, ok := byTag[f.Tag()]; ok {
			return msg
		}
		if msg, ok := byTag["*"]; ok {
			return msg
		}
	}
	// Fallback for rules without product copy.
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", f.Field())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", f.Field(), f.Param())
	default:
		return fmt.Sprintf("%s no es válido", f.Field())
	}
}
