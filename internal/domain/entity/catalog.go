package entity

import "time"

// BulkDiscount is an optional volume discount attached to a product.
type BulkDiscount struct {
	MinQuantity     int     `json:"minQuantity"`
	DiscountPercent float64 `json:"discountPercent"`
}

// Product is a farming supply listed by a supplier.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Price        float64       `json:"price"`
	Category     string        `json:"category"`
	Image        string        `json:"image"`
	Supplier     string        `json:"supplier"`
	InStock      bool          `json:"inStock"`
	Rating       float64       `json:"rating"`
	Reviews      int           `json:"reviews"`
	BulkDiscount *BulkDiscount `json:"bulkDiscount,omitempty"`
}

// Crop is a harvested listing offered directly by a farmer. Crops carry
// no category field; category filters match against the name instead.
type Crop struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Variety      string    `json:"variety"`
	Quantity     int       `json:"quantity"`
	Unit         string    `json:"unit"`
	PricePerUnit float64   `json:"pricePerUnit"`
	Description  string    `json:"description"`
	HarvestDate  time.Time `json:"harvestDate"`
	Location     string    `json:"location"`
	Image        string    `json:"image"`
	Farmer       string    `json:"farmer"`
	Organic      bool      `json:"organic"`
	Available    bool      `json:"available"`
}

// TreatmentType classifies how a treatment acts on a disease.
type TreatmentType string

const (
	TreatmentOrganic    TreatmentType = "organic"
	TreatmentChemical   TreatmentType = "chemical"
	TreatmentBiological TreatmentType = "biological"
)

// Treatment is a remedy recommended for a disease. ProductIDs reference
// supplies in the product catalog; the association is read-only.
type Treatment struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Type              TreatmentType `json:"type"`
	Description       string        `json:"description"`
	ApplicationMethod string        `json:"applicationMethod"`
	Dosage            string        `json:"dosage"`
	ProductIDs        []string      `json:"productIds"`
}

// Disease is a reference entry in the crop disease guide.
type Disease struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Symptoms      []string    `json:"symptoms"`
	AffectedCrops []string    `json:"affectedCrops"`
	Treatments    []Treatment `json:"treatments"`
	Prevention    []string    `json:"prevention"`
	Image         string      `json:"image"`
}
