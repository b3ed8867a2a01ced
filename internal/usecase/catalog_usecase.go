package usecase

import (
	"context"

	"farmhub/internal/domain/entity"
)

// Sort keys accepted by the catalog queries.
const (
	SortName        = "name"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortRating      = "rating"
	SortQuantity    = "quantity"
	SortHarvestDate = "harvest-date"
)

// ProductQuery narrows and orders a supply catalog listing.
type ProductQuery struct {
	Search   string
	Category string
	Sort     string
}

// CropQuery narrows and orders a crop listing.
type CropQuery struct {
	Search   string
	Category string
	Sort     string
}

// DiseaseQuery narrows a disease guide listing.
type DiseaseQuery struct {
	Search string
	Crop   string
}

// CartLine joins a cart item with its resolved catalog entry.
type CartLine struct {
	Item     entity.CartItem `json:"item"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Unit     string          `json:"unit"`
	Image    string          `json:"image"`
	Seller   string          `json:"seller"`
	Subtotal float64         `json:"subtotal"`
}

// CartSummary is a priced view of the whole cart.
type CartSummary struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// CatalogUsecase answers read-only queries over the catalogs and prices
// the cart against them.
type CatalogUsecase interface {
	// ListProducts returns supplies matching the query, ordered by its sort key.
	ListProducts(ctx context.Context, query ProductQuery) ([]entity.Product, error)

	// ListCrops returns crop listings matching the query.
	ListCrops(ctx context.Context, query CropQuery) ([]entity.Crop, error)

	// ListDiseases returns disease guide entries matching the query.
	ListDiseases(ctx context.Context, query DiseaseQuery) ([]entity.Disease, error)

	// CartLines prices the given cart items against the catalogs. Items
	// that no longer resolve to a catalog entry are dropped.
	CartLines(ctx context.Context, items []entity.CartItem) (*CartSummary, error)
}
