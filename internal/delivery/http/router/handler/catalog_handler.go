package handler

import (
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves read-only catalog queries.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// ListSupplies returns farm supplies matching the query parameters.
func (h *CatalogHandler) ListSupplies(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context(), usecase.ProductQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListCrops returns crop listings matching the query parameters.
func (h *CatalogHandler) ListCrops(c echo.Context) error {
	crops, err := h.catalog.ListCrops(c.Request().Context(), usecase.CropQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, crops, "")
}

// ListDiseases returns disease guide entries matching the query parameters.
func (h *CatalogHandler) ListDiseases(c echo.Context) error {
	diseases, err := h.catalog.ListDiseases(c.Request().Context(), usecase.DiseaseQuery{
		Search: c.QueryParam("search"),
		Crop:   c.QueryParam("crop"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, diseases, "")
}
