package validate

import (
	"strconv"
	"strings"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

// LoginForm carries login credentials as entered.
type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"min=6"`
}

// RegisterForm carries the registration fields. Address is optional.
type RegisterForm struct {
	FirstName       string `json:"first_name" form:"first_name" validate:"required"`
	LastName        string `json:"last_name" form:"last_name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirmPassword" validate:"required,eqfield=Password"`
	Address         string `json:"address" form:"address"`
}

// TrackingForm carries the tracking-code query field.
type TrackingForm struct {
	TrackingCode string `json:"tracking_code" form:"trackingCode" validate:"required,min=4"`
}

// ShipmentForm is the shipment-creation form as the browser submits it.
// Numeric fields are kept as raw text on purpose: text inputs deliver
// strings, and the product's contract is coerce-then-validate, not
// parse-error reporting.
type ShipmentForm struct {
	OriginID          string `json:"origin_id" form:"origin_id"`
	DestinationID     string `json:"destination_id" form:"destination_id"`
	DestinationDetail string `json:"destination_detail" form:"destination_detail"`
	ProductTypeID     string `json:"product_type_id" form:"product_type_id"`
	WeightGrams       string `json:"weight_grams" form:"weight_grams"`
	WidthCm           string `json:"width_cm" form:"width_cm"`
	HeightCm          string `json:"height_cm" form:"height_cm"`
	LengthCm          string `json:"length_cm" form:"length_cm"`
	RecipientName     string `json:"recipient_name" form:"recipient_name"`
	RecipientAddress  string `json:"recipient_address" form:"recipient_address"`
	RecipientPhone    string `json:"recipient_phone" form:"recipient_phone"`
	RecipientDocument string `json:"recipient_document" form:"recipient_document"`
}

// Draft coerces the raw form into a ShipmentDraft. Non-numeric text becomes
// 0 and is then rejected by the positivity rules downstream; the "invalid
// text → 0 → fails positivity" behaviour is part of the validation contract
// and must not be replaced by a separate not-a-number error.
func (f ShipmentForm) Draft() domain.ShipmentDraft {
	return domain.ShipmentDraft{
		OriginID:          coerceInt(f.OriginID),
		DestinationID:     coerceInt(f.DestinationID),
		DestinationDetail: strings.TrimSpace(f.DestinationDetail),
		ProductTypeID:     coerceInt(f.ProductTypeID),
		WeightGrams:       coerceInt(f.WeightGrams),
		WidthCm:           coerceInt(f.WidthCm),
		HeightCm:          coerceInt(f.HeightCm),
		LengthCm:          coerceInt(f.LengthCm),
		RecipientName:     strings.TrimSpace(f.RecipientName),
		RecipientAddress:  strings.TrimSpace(f.RecipientAddress),
		RecipientPhone:    strings.TrimSpace(f.RecipientPhone),
		RecipientDocument: strings.TrimSpace(f.RecipientDocument),
	}
}

func coerceInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
