package handler

import (
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler exposes the cart store and its priced view.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,oneof=supply crop"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type searchRequest struct {
	Query string `json:"query"`
}

// Summary returns the priced cart with the current search query.
func (h *CartHandler) Summary(c echo.Context) error {
	state := h.cart.State()

	summary, err := h.catalog.CartLines(c.Request().Context(), state.Cart)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items":       state.Cart,
		"lines":       summary.Lines,
		"total":       summary.Total,
		"searchQuery": state.SearchQuery,
	}, "")
}

// AddItem puts a catalog item in the cart, replacing the quantity when the
// item is already present.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state := h.cart.AddToCart(input.ProductID, input.Quantity, entity.CartItemType(input.Type))

	return response.Success(c, http.StatusOK, state, "Item added to cart")
}

// UpdateItem sets the quantity of a cart line. Zero or negative removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input updateItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity")
	}

	state := h.cart.UpdateQuantity(c.Param("id"), input.Quantity)

	return response.Success(c, http.StatusOK, state, "Cart updated")
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	state := h.cart.Remove(c.Param("id"))

	return response.Success(c, http.StatusOK, state, "Item removed")
}

// SetSearch records the active search query.
func (h *CartHandler) SetSearch(c echo.Context) error {
	var input searchRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}

	state := h.cart.SetSearchQuery(input.Query)

	return response.Success(c, http.StatusOK, state, "")
}
