// internal/pkg/auth/password.go
package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

var commonPasswords = map[string]bool{
	"123456": true, "1234567": true, "12345678": true, "123456789": true,
	"password": true, "password1": true, "qwerty": true, "letmein": true,
	"iloveyou": true, "welcome": true, "admin123": true,
}

// PasswordManager handles password operations
type PasswordManager struct {
	cost int
}

// NewPasswordManager creates a password manager using the given bcrypt cost
func NewPasswordManager(cost int) *PasswordManager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordManager{cost: cost}
}

// HashPassword validates and hashes a password using bcrypt
func (p *PasswordManager) HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword verifies a password against its hash
func (p *PasswordManager) VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword checks password length and rejects very common passwords
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be no more than %d characters long", MaxPasswordLength)
	}
	if commonPasswords[strings.ToLower(password)] {
		return fmt.Errorf("password is too common and easily guessable")
	}
	return nil
}
