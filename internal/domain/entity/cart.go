package entity

// CartItemType distinguishes which catalog a cart line references.
type CartItemType string

const (
	CartItemSupply CartItemType = "supply"
	CartItemCrop   CartItemType = "crop"
)

// CartItem is one line of the cart: a catalog reference and a quantity.
type CartItem struct {
	ProductID string       `json:"productId"`
	Quantity  int          `json:"quantity"`
	Type      CartItemType `json:"type"`
}

// AppState is the shared interface state: the cart contents and the
// active search query. Values are treated as immutable; Apply returns a
// new state rather than mutating the receiver.
type AppState struct {
	Cart        []CartItem `json:"cart"`
	SearchQuery string     `json:"searchQuery"`
}

// ActionType enumerates the state transitions AppState understands.
type ActionType string

const (
	ActionAddToCart          ActionType = "ADD_TO_CART"
	ActionUpdateCartQuantity ActionType = "UPDATE_CART_QUANTITY"
	ActionRemoveFromCart     ActionType = "REMOVE_FROM_CART"
	ActionSetSearchQuery     ActionType = "SET_SEARCH_QUERY"
)

// Action is a single requested state transition. Which fields matter
// depends on Type: cart actions use ProductID/Quantity/ItemType, and
// ActionSetSearchQuery uses Value.
type Action struct {
	Type      ActionType
	ProductID string
	Quantity  int
	ItemType  CartItemType
	Value     string
}

// Apply reduces the action onto the state and returns the result. The
// receiver is never mutated; the cart slice is copied before any change.
// Unknown action types return the state unchanged.
func (s AppState) Apply(action Action) AppState {
	switch action.Type {
	case ActionAddToCart:
		next := s
		next.Cart = make([]CartItem, 0, len(s.Cart)+1)
		replaced := false
		for _, item := range s.Cart {
			if item.ProductID == action.ProductID {
				// Re-adding an existing product replaces its quantity.
				item.Quantity = action.Quantity
				item.Type = action.ItemType
				replaced = true
			}
			next.Cart = append(next.Cart, item)
		}
		if !replaced {
			next.Cart = append(next.Cart, CartItem{
				ProductID: action.ProductID,
				Quantity:  action.Quantity,
				Type:      action.ItemType,
			})
		}

		return next

	case ActionUpdateCartQuantity:
		if action.Quantity <= 0 {
			return s.Apply(Action{Type: ActionRemoveFromCart, ProductID: action.ProductID})
		}
		next := s
		next.Cart = make([]CartItem, len(s.Cart))
		for i, item := range s.Cart {
			if item.ProductID == action.ProductID {
				item.Quantity = action.Quantity
			}
			next.Cart[i] = item
		}

		return next

	case ActionRemoveFromCart:
		next := s
		next.Cart = make([]CartItem, 0, len(s.Cart))
		for _, item := range s.Cart {
			if item.ProductID == action.ProductID {
				continue
			}
			next.Cart = append(next.Cart, item)
		}

		return next

	case ActionSetSearchQuery:
		next := s
		next.SearchQuery = action.Value
		// Keep the cart slice shared; search changes never touch it.

		return next

	default:
		return s
	}
}
