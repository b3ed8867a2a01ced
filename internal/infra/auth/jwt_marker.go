// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"farmhub/config"
	"farmhub/internal/domain/service"
)

// jwtMarkerService is a concrete implementation of the MarkerService
// interface using the JWT standard.
type jwtMarkerService struct {
	secret string        // Secret key for signing markers.
	ttl    time.Duration // Time-to-live for markers.
}

// NewJWTMarkerService is the constructor for jwtMarkerService.
func NewJWTMarkerService(cfg *config.Config) (service.MarkerService, error) {
	if cfg.Marker.Secret == "" {
		return nil, errors.New("marker secret must be provided")
	}

	ttl := cfg.Marker.TTL
	if ttl <= 0 {
		ttl = time.Hour * 24 * 30
	}

	return &jwtMarkerService{
		secret: cfg.Marker.Secret,
		ttl:    ttl,
	}, nil
}

// Mint creates a new signed marker for the given user.
func (s *jwtMarkerService) Mint(userID string) (string, error) {
	now := time.Now()
	claims := &service.MarkerClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the marker and returns the user ID it was minted for.
func (s *jwtMarkerService) Validate(marker string) (string, error) {
	token, err := jwt.ParseWithClaims(marker, &service.MarkerClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*service.MarkerClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.UserID, nil
}
