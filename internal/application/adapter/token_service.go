// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/google/uuid"

// TokenPair holds an access token and its paired refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims carries the validated identity extracted from a token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService defines the interface for JWT operations.
type TokenService interface {
	// GenerateTokenPair creates a new access/refresh token pair for a user.
	GenerateTokenPair(userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(token string) (*TokenClaims, error)
}
