package service

import "github.com/golang-jwt/jwt/v5"

// MarkerClaims defines the custom claims carried by a session marker.
type MarkerClaims struct {
	UserID string
	jwt.RegisteredClaims
}

// MarkerService mints and validates the signed session markers stored in
// the persisted slot. This abstracts the token format from the use cases.
type MarkerService interface {
	// Mint creates a new signed marker for the given user.
	Mint(userID string) (string, error)

	// Validate checks the marker and returns the user ID it was minted for.
	Validate(marker string) (string, error)
}
