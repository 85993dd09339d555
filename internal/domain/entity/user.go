// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"wishlist/internal/errors"

	"github.com/google/uuid"
)

// ErrEmailRequired is returned by NewUser when the email address is empty.
var ErrEmailRequired = errors.New("user must have an email address")

// User is the core identity in the system. A user owns zero or more wishlists;
// wishlists are only ever reachable through their owner.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // The user's login identifier. Unique, stored lowercased.
	PasswordHash string     // Salted bcrypt hash of the user's password.
	FirstName    string     // The user's given name.
	LastName     string     // The user's family name. May be empty.
	Gender       Gender     // Optional self-reported gender.
	Birthday     *time.Time // Optional date of birth.
	IsActive     bool       // Inactive users cannot authenticate.
	IsStaff      bool       // Staff users may access administrative tooling.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// NewUser builds a user with a normalized email address.
// The email is required; everything else can be filled in afterwards.
func NewUser(email, firstName string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	return &User{
		Email:     email,
		FirstName: firstName,
		IsActive:  true,
	}, nil
}

// NormalizeEmail trims surrounding whitespace and lowercases the domain-insensitive
// address so that lookups and the unique constraint agree on a single form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
