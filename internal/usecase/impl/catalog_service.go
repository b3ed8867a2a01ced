package impl

import (
	"context"
	"log/slog"
	"sort"

	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/repository"
	"farmhub/internal/errors"
	"farmhub/internal/usecase"
	"farmhub/internal/util"

	"go.uber.org/fx"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// categoryAll matches every entry; categoryOrganic is a pseudo-category
// backed by the crop's organic flag rather than any category field.
const (
	categoryAll     = "all"
	categoryOrganic = "organic"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	fx.In

	products repository.ProductRepository
	crops    repository.CropRepository
	diseases repository.DiseaseRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	products repository.ProductRepository,
	crops repository.CropRepository,
	diseases repository.DiseaseRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		crops:    crops,
		diseases: diseases,
		logger:   logger,
	}
}

// ListProducts returns supplies matching the query, ordered by its sort key.
func (srv *catalogService) ListProducts(ctx context.Context, query usecase.ProductQuery) ([]entity.Product, error) {
	all, err := srv.products.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	matched := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if !productCategoryMatches(query.Category, p) {
			continue
		}
		if !searchMatches(query.Search, p.Name, p.Description) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, query.Sort)

	return matched, nil
}

// ListCrops returns crop listings matching the query.
func (srv *catalogService) ListCrops(ctx context.Context, query usecase.CropQuery) ([]entity.Crop, error) {
	all, err := srv.crops.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	matched := make([]entity.Crop, 0, len(all))
	for _, c := range all {
		if !cropCategoryMatches(query.Category, c) {
			continue
		}
		if !searchMatches(query.Search, c.Name, c.Variety, c.Location) {
			continue
		}
		matched = append(matched, c)
	}

	sortCrops(matched, query.Sort)

	return matched, nil
}

// ListDiseases returns disease guide entries matching the query.
func (srv *catalogService) ListDiseases(ctx context.Context, query usecase.DiseaseQuery) ([]entity.Disease, error) {
	all, err := srv.diseases.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list diseases")
	}

	matched := make([]entity.Disease, 0, len(all))
	for _, d := range all {
		if query.Crop != "" && query.Crop != categoryAll && !cropListed(d.AffectedCrops, query.Crop) {
			continue
		}
		if !diseaseSearchMatches(d, query.Search) {
			continue
		}
		matched = append(matched, d)
	}

	return matched, nil
}

// CartLines prices the given cart items against the catalogs. Items that
// no longer resolve to a catalog entry are dropped from both the list
// and the total.
func (srv *catalogService) CartLines(ctx context.Context, items []entity.CartItem) (*usecase.CartSummary, error) {
	summary := &usecase.CartSummary{
		Lines: make([]usecase.CartLine, 0, len(items)),
	}

	for _, item := range items {
		line, err := srv.resolveLine(ctx, item)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) || errors.Is(err, repository.ErrCropNotFound) {
				srv.logger.Debug("Dropping unresolvable cart item", slog.String("productID", item.ProductID))

				continue
			}

			return nil, errors.Wrap(err, "failed to resolve cart item")
		}

		summary.Lines = append(summary.Lines, line)
		summary.Total += line.Subtotal
	}

	return summary, nil
}

func (srv *catalogService) resolveLine(ctx context.Context, item entity.CartItem) (usecase.CartLine, error) {
	if item.Type == entity.CartItemCrop {
		crop, err := srv.crops.FindByID(ctx, item.ProductID)
		if err != nil {
			return usecase.CartLine{}, err
		}

		return usecase.CartLine{
			Item:     item,
			Name:     crop.Name,
			Price:    crop.PricePerUnit,
			Unit:     crop.Unit,
			Image:    crop.Image,
			Seller:   crop.Farmer,
			Subtotal: crop.PricePerUnit * float64(item.Quantity),
		}, nil
	}

	product, err := srv.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return usecase.CartLine{}, err
	}

	return usecase.CartLine{
		Item:     item,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Seller:   product.Supplier,
		Subtotal: product.Price * float64(item.Quantity),
	}, nil
}

// productCategoryMatches implements the category filter for supplies:
// exact category match, the "all" sentinel, or a substring match of the
// selected category against the product name.
func productCategoryMatches(selected string, p entity.Product) bool {
	switch {
	case selected == "" || util.EqualFold(selected, categoryAll):
		return true
	case util.EqualFold(selected, p.Category):
		return true
	default:
		return util.ContainsFold(p.Name, selected)
	}
}

// cropCategoryMatches implements the category filter for crops. Crops
// have no category field, so besides the sentinels the selected category
// is matched as a substring of the crop name.
func cropCategoryMatches(selected string, c entity.Crop) bool {
	switch {
	case selected == "" || util.EqualFold(selected, categoryAll):
		return true
	case util.EqualFold(selected, categoryOrganic):
		return c.Organic
	default:
		return util.ContainsFold(c.Name, selected)
	}
}

// searchMatches reports whether the query appears in any of the fields,
// case-insensitively. An empty query matches everything.
func searchMatches(query string, fields ...string) bool {
	if query == "" {
		return true
	}

	for _, field := range fields {
		if util.ContainsFold(field, query) {
			return true
		}
	}

	return false
}

func diseaseSearchMatches(d entity.Disease, query string) bool {
	if query == "" {
		return true
	}
	if util.ContainsFold(d.Name, query) || util.ContainsFold(d.Description, query) {
		return true
	}

	for _, symptom := range d.Symptoms {
		if util.ContainsFold(symptom, query) {
			return true
		}
	}

	return false
}

// cropListed reports whether the selected crop is one of the affected
// crops. Membership is exact, not substring: "orn" must not match "Corn".
func cropListed(crops []string, selected string) bool {
	for _, crop := range crops {
		if util.EqualFold(crop, selected) {
			return true
		}
	}

	return false
}

func sortProducts(products []entity.Product, key string) {
	switch key {
	case usecase.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case usecase.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case usecase.SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	default:
		// Unrecognized keys fall back to name order.
		collator := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

func sortCrops(crops []entity.Crop, key string) {
	switch key {
	case usecase.SortPriceLow:
		sort.SliceStable(crops, func(i, j int) bool { return crops[i].PricePerUnit < crops[j].PricePerUnit })
	case usecase.SortPriceHigh:
		sort.SliceStable(crops, func(i, j int) bool { return crops[i].PricePerUnit > crops[j].PricePerUnit })
	case usecase.SortQuantity:
		sort.SliceStable(crops, func(i, j int) bool { return crops[i].Quantity > crops[j].Quantity })
	case usecase.SortHarvestDate:
		sort.SliceStable(crops, func(i, j int) bool { return crops[i].HarvestDate.After(crops[j].HarvestDate) })
	default:
		collator := collate.New(language.English)
		sort.SliceStable(crops, func(i, j int) bool {
			return collator.CompareString(crops[i].Name, crops[j].Name) < 0
		})
	}
}
