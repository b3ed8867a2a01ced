package memory

import (
	"context"

	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/repository"
)

// productRepository serves the supply catalog fixture. The fixture is
// immutable, so reads need no locking; List copies the slice so callers
// can reorder freely.
type productRepository struct {
	products []entity.Product
	byID     map[string]entity.Product
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository() repository.ProductRepository {
	products := seedProducts()
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &productRepository{
		products: products,
		byID:     byID,
	}
}

// List returns every product in the catalog.
func (r *productRepository) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

// FindByID retrieves a single product by its unique ID.
func (r *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &p, nil
}

// cropRepository serves the crop listing fixture.
type cropRepository struct {
	crops []entity.Crop
	byID  map[string]entity.Crop
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository() repository.CropRepository {
	crops := seedCrops()
	byID := make(map[string]entity.Crop, len(crops))
	for _, c := range crops {
		byID[c.ID] = c
	}

	return &cropRepository{
		crops: crops,
		byID:  byID,
	}
}

// List returns every crop listing.
func (r *cropRepository) List(_ context.Context) ([]entity.Crop, error) {
	out := make([]entity.Crop, len(r.crops))
	copy(out, r.crops)

	return out, nil
}

// FindByID retrieves a single crop by its unique ID.
func (r *cropRepository) FindByID(_ context.Context, id string) (*entity.Crop, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrCropNotFound
	}

	return &c, nil
}

// diseaseRepository serves the disease guide fixture.
type diseaseRepository struct {
	diseases []entity.Disease
	byID     map[string]entity.Disease
}

// NewDiseaseRepository is the constructor for diseaseRepository.
func NewDiseaseRepository() repository.DiseaseRepository {
	diseases := seedDiseases()
	byID := make(map[string]entity.Disease, len(diseases))
	for _, d := range diseases {
		byID[d.ID] = d
	}

	return &diseaseRepository{
		diseases: diseases,
		byID:     byID,
	}
}

// List returns every disease entry.
func (r *diseaseRepository) List(_ context.Context) ([]entity.Disease, error) {
	out := make([]entity.Disease, len(r.diseases))
	copy(out, r.diseases)

	return out, nil
}

// FindByID retrieves a single disease by its unique ID.
func (r *diseaseRepository) FindByID(_ context.Context, id string) (*entity.Disease, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrDiseaseNotFound
	}

	return &d, nil
}
