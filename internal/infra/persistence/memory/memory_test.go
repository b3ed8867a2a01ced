package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/internal/domain/repository"
)

func TestProductRepository(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	product, err := repo.FindByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Hybrid Corn Seeds", product.Name)
	require.NotNil(t, product.BulkDiscount)
	assert.Equal(t, 5, product.BulkDiscount.MinQuantity)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ListReturnsCopy(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Premium NPK Fertilizer", second[0].Name)
}

func TestCropRepository(t *testing.T) {
	repo := NewCropRepository()
	ctx := context.Background()

	crops, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, crops, 3)

	crop, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Organic Tomatoes", crop.Name)
	assert.True(t, crop.Organic)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrCropNotFound)
}

func TestDiseaseRepository(t *testing.T) {
	repo := NewDiseaseRepository()
	ctx := context.Background()

	diseases, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, diseases, 2)

	disease, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tomato Blight", disease.Name)
	require.Len(t, disease.Treatments, 1)
	assert.Equal(t, []string{"2"}, disease.Treatments[0].ProductIDs)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrDiseaseNotFound)
}

func TestDiseaseTreatmentsReferenceKnownProducts(t *testing.T) {
	products := NewProductRepository()
	diseases := NewDiseaseRepository()
	ctx := context.Background()

	all, err := diseases.List(ctx)
	require.NoError(t, err)

	for _, d := range all {
		for _, treatment := range d.Treatments {
			for _, id := range treatment.ProductIDs {
				_, err := products.FindByID(ctx, id)
				assert.NoError(t, err, "treatment %s references unknown product %s", treatment.ID, id)
			}
		}
	}
}

func TestMarkerRepository(t *testing.T) {
	repo := NewMarkerRepository()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrMarkerNotFound)

	require.NoError(t, repo.Save(ctx, "marker-1"))

	marker, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "marker-1", marker)

	// Save overwrites the slot
	require.NoError(t, repo.Save(ctx, "marker-2"))
	marker, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "marker-2", marker)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrMarkerNotFound)

	// Clearing an empty slot is a no-op
	require.NoError(t, repo.Clear(ctx))
}
