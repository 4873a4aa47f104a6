package domain

// ShipmentDraft holds user-entered shipment data prior to submission.
// Numeric fields arrive as free text from the form layer and are coerced
// before validation; a draft is owned by a single form session and is
// discarded once the submission succeeds.
type ShipmentDraft struct {
	OriginID          int    `json:"origin_id"`
	DestinationID     int    `json:"destination_id"`
	DestinationDetail string `json:"destination_detail,omitempty"`
	ProductTypeID     int    `json:"product_type_id"`
	WeightGrams       int    `json:"weight_grams"`
	WidthCm           int    `json:"width_cm"`
	HeightCm          int    `json:"height_cm"`
	LengthCm          int    `json:"length_cm"`
	RecipientName     string `json:"recipient_name"`
	RecipientAddress  string `json:"recipient_address"`
	RecipientPhone    string `json:"recipient_phone"`
	RecipientDocument string `json:"recipient_document"`
}

// Location is an immutable reference entity: a city a shipment can be sent
// from or to.
type Location struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// ProductType is an immutable reference entity describing a weight band.
// MaxWeightGrams == nil means the band is unbounded above.
type ProductType struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	MinWeightGrams int    `json:"min_weight_grams"`
	MaxWeightGrams *int   `json:"max_weight_grams"`
}

// Contains reports whether the given weight falls inside this type's band.
func (p ProductType) Contains(weightGrams int) bool {
	if weightGrams < p.MinWeightGrams {
		return false
	}
	return p.MaxWeightGrams == nil || weightGrams <= *p.MaxWeightGrams
}

// MatchProductType selects the product type whose band contains the weight.
// Bands are expected to be disjoint and exhaustive; when configured data
// produces overlapping bands the earliest match wins and the overlap is
// reported as ErrAmbiguousProductType. A weight no band covers is a
// configuration error too (ErrNoProductTypeForWeight), never a silent miss.
func MatchProductType(types []ProductType, weightGrams int) (ProductType, error) {
	var (
		found   bool
		matched ProductType
	)
	for _, pt := range types {
		if !pt.Contains(weightGrams) {
			continue
		}
		if found {
			return matched, ErrAmbiguousProductType
		}
		matched = pt
		found = true
	}
	if !found {
		return ProductType{}, ErrNoProductTypeForWeight
	}
	return matched, nil
}

func intPtr(v int) *int { return &v }

// DefaultProductTypes mirrors the catalog the product shipped with. It is
// the fallback when the upstream API exposes no catalog endpoints.
var DefaultProductTypes = []ProductType{
	{ID: 1, Name: "sobre", MinWeightGrams: 0, MaxWeightGrams: intPtr(1000),
		Description: "Documentos y sobres pequeños de 0 a 1000 gramos"},
	{ID: 2, Name: "paquete", MinWeightGrams: 1001, MaxWeightGrams: intPtr(20000),
		Description: "Paquetes estándar de 1001 a 20000 gramos"},
	{ID: 3, Name: "paquete pesado", MinWeightGrams: 20001, MaxWeightGrams: nil,
		Description: "Paquetes grandes o pesados de 20001 gramos en adelante"},
}

// DefaultLocations is the built-in city catalog, same fallback role as
// DefaultProductTypes.
var DefaultLocations = []Location{
	{ID: 1, Name: "Bogotá", Department: "Cundinamarca"},
	{ID: 2, Name: "Medellín", Department: "Antioquia"},
	{ID: 3, Name: "Cali", Department: "Valle del Cauca"},
	{ID: 4, Name: "Barranquilla", Department: "Atlántico"},
	{ID: 5, Name: "Cartagena", Department: "Bolívar"},
	{ID: 6, Name: "Cúcuta", Department: "Norte de Santander"},
	{ID: 7, Name: "Bucaramanga", Department: "Santander"},
	{ID: 8, Name: "Pereira", Department: "Risaralda"},
	{ID: 9, Name: "Santa Marta", Department: "Magdalena"},
	{ID: 10, Name: "Ibagué", Department: "Tolima"},
	{ID: 11, Name: "Pasto", Department: "Nariño"},
	{ID: 12, Name: "Manizales", Department: "Caldas"},
	{ID: 13, Name: "Neiva", Department: "Huila"},
	{ID: 14, Name: "Villavicencio", Department: "Meta"},
	{ID: 15, Name: "Armenia", Department: "Quindío"},
	{ID: 16, Name: "Valledupar", Department: "Cesar"},
	{ID: 17, Name: "Montería", Department: "Córdoba"},
	{ID: 18, Name: "Popayán", Department: "Cauca"},
	{ID: 19, Name: "Sincelejo", Department: "Sucre"},
	{ID: 20, Name: "Tunja", Department: "Boyacá"},
}
