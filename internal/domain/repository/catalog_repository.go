// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farmhub/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrCropNotFound is a domain-specific error returned when a crop is not found.
var ErrCropNotFound = errors.New("crop not found")

// ErrDiseaseNotFound is a domain-specific error returned when a disease is not found.
var ErrDiseaseNotFound = errors.New("disease not found")

// ProductRepository defines read access to the supply catalog.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// List returns every product in the catalog.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)
}

// CropRepository defines read access to the crop catalog.
type CropRepository interface {
	// List returns every crop listing.
	List(ctx context.Context) ([]entity.Crop, error)

	// FindByID retrieves a single crop by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Crop, error)
}

// DiseaseRepository defines read access to the disease guide.
type DiseaseRepository interface {
	// List returns every disease entry.
	List(ctx context.Context) ([]entity.Disease, error)

	// FindByID retrieves a single disease by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Disease, error)
}
