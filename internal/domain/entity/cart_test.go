package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppState_ApplyDoesNotMutateReceiver(t *testing.T) {
	original := AppState{
		Cart: []CartItem{
			{ProductID: "1", Quantity: 2, Type: CartItemSupply},
		},
		SearchQuery: "corn",
	}

	next := original.Apply(Action{
		Type:      ActionAddToCart,
		ProductID: "2",
		Quantity:  1,
		ItemType:  CartItemCrop,
	})

	assert.Len(t, next.Cart, 2)
	assert.Len(t, original.Cart, 1)
	assert.Equal(t, "corn", next.SearchQuery)

	removed := next.Apply(Action{Type: ActionRemoveFromCart, ProductID: "1"})
	assert.Len(t, removed.Cart, 1)
	assert.Len(t, next.Cart, 2)
}

func TestAppState_ApplyIsDeterministic(t *testing.T) {
	state := AppState{}
	action := Action{Type: ActionAddToCart, ProductID: "1", Quantity: 3, ItemType: CartItemSupply}

	first := state.Apply(action)
	second := state.Apply(action)

	assert.Equal(t, first, second)
}

func TestAppState_AddPreservesPosition(t *testing.T) {
	state := AppState{}
	state = state.Apply(Action{Type: ActionAddToCart, ProductID: "1", Quantity: 1, ItemType: CartItemSupply})
	state = state.Apply(Action{Type: ActionAddToCart, ProductID: "2", Quantity: 1, ItemType: CartItemSupply})

	// Re-adding the first item updates it in place
	state = state.Apply(Action{Type: ActionAddToCart, ProductID: "1", Quantity: 9, ItemType: CartItemSupply})

	require.Len(t, state.Cart, 2)
	assert.Equal(t, "1", state.Cart[0].ProductID)
	assert.Equal(t, 9, state.Cart[0].Quantity)
}

func TestUserPatch_ApplyTo(t *testing.T) {
	user := &User{
		Username: "john_farmer",
		Bio:      "original bio",
		Email:    "john@example.com",
	}

	bio := "new bio"
	UserPatch{Bio: &bio}.ApplyTo(user)

	assert.Equal(t, "new bio", user.Bio)
	// Nil fields stay untouched
	assert.Equal(t, "john_farmer", user.Username)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestUserPatch_PreferencesReplaceWholesale(t *testing.T) {
	user := &User{Preferences: DefaultPreferences()}
	user.Preferences.Customization.BackgroundImage = "https://example.com/old.jpeg"

	prefs := DefaultPreferences()
	prefs.Theme = ThemeDark
	UserPatch{Preferences: &prefs}.ApplyTo(user)

	assert.Equal(t, ThemeDark, user.Preferences.Theme)
	// Whole-document replacement, not a merge
	assert.Empty(t, user.Preferences.Customization.BackgroundImage)
}

func TestUser_CloneIsDeep(t *testing.T) {
	user := &User{Preferences: DefaultPreferences()}
	user.Preferences.Customization.BackgroundSchedule = &BackgroundSchedule{
		Enabled:  true,
		Images:   []string{"https://example.com/day.jpeg"},
		Interval: 30 * time.Minute,
	}

	clone := user.Clone()
	clone.Preferences.Customization.BackgroundSchedule.Images[0] = "mutated"

	assert.Equal(t, "https://example.com/day.jpeg", user.Preferences.Customization.BackgroundSchedule.Images[0])

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}
