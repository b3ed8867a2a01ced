package usecase

import "farmhub/internal/domain/entity"

// CartUsecase is the cart and search store: a concurrency-safe wrapper
// around the pure AppState reducer.
type CartUsecase interface {
	// State returns a snapshot of the current app state.
	State() entity.AppState

	// Dispatch applies an action and returns the resulting state.
	Dispatch(action entity.Action) entity.AppState

	// AddToCart adds a catalog item, replacing the quantity if it is
	// already in the cart.
	AddToCart(productID string, quantity int, itemType entity.CartItemType) entity.AppState

	// UpdateQuantity sets the quantity of a cart line. Zero or negative
	// removes the line.
	UpdateQuantity(productID string, quantity int) entity.AppState

	// Remove deletes a cart line.
	Remove(productID string) entity.AppState

	// SetSearchQuery records the active search query.
	SetSearchQuery(query string) entity.AppState
}
