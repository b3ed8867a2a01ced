package impl

import (
	"log/slog"
	"sync"

	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface: a mutex around the
// pure AppState reducer.
type cartService struct {
	fx.In

	logger *slog.Logger

	mu    sync.Mutex
	state entity.AppState
}

// NewCartService is the constructor for cartService.
func NewCartService(logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		logger: logger,
	}
}

// State returns a snapshot of the current app state. The cart slice is
// copied so callers cannot reach the store's backing array.
func (srv *cartService) State() entity.AppState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

// snapshotLocked copies the state. Callers must hold mu.
func (srv *cartService) snapshotLocked() entity.AppState {
	snapshot := srv.state
	snapshot.Cart = make([]entity.CartItem, len(srv.state.Cart))
	copy(snapshot.Cart, srv.state.Cart)

	return snapshot
}

// Dispatch applies an action and returns the resulting state.
func (srv *cartService) Dispatch(action entity.Action) entity.AppState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state = srv.state.Apply(action)
	srv.logger.Debug("Dispatched action",
		slog.String("type", string(action.Type)),
		slog.Int("cartSize", len(srv.state.Cart)))

	return srv.snapshotLocked()
}

// AddToCart adds a catalog item, replacing the quantity if it is already
// in the cart.
func (srv *cartService) AddToCart(productID string, quantity int, itemType entity.CartItemType) entity.AppState {
	return srv.Dispatch(entity.Action{
		Type:      entity.ActionAddToCart,
		ProductID: productID,
		Quantity:  quantity,
		ItemType:  itemType,
	})
}

// UpdateQuantity sets the quantity of a cart line. Zero or negative
// removes the line.
func (srv *cartService) UpdateQuantity(productID string, quantity int) entity.AppState {
	return srv.Dispatch(entity.Action{
		Type:      entity.ActionUpdateCartQuantity,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// Remove deletes a cart line.
func (srv *cartService) Remove(productID string) entity.AppState {
	return srv.Dispatch(entity.Action{
		Type:      entity.ActionRemoveFromCart,
		ProductID: productID,
	})
}

// SetSearchQuery records the active search query.
func (srv *cartService) SetSearchQuery(query string) entity.AppState {
	return srv.Dispatch(entity.Action{
		Type:  entity.ActionSetSearchQuery,
		Value: query,
	})
}
