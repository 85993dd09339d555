// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"wishlist/config"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 72 // bcrypt truncates beyond 72 bytes
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{
		MinLength: defaultMinPasswordLength,
		MaxLength: defaultMaxPasswordLength,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
		if strength.MinLength == 0 {
			strength.MinLength = defaultMinPasswordLength
		}
		if strength.MaxLength == 0 {
			strength.MaxLength = defaultMaxPasswordLength
		}
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext password against the
// configured requirements before it is ever hashed.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too short")
	}
	if len(password) > h.strength.MaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		return domainerrors.ErrValidationFailed.WrapMessage("password needs an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		return domainerrors.ErrValidationFailed.WrapMessage("password needs a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasDigit {
		return domainerrors.ErrValidationFailed.WrapMessage("password needs a digit")
	}

	return nil
}
