// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword generates a hash from a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword checks if a plain text password matches a hash.
	VerifyPassword(password, hash string) error
}
