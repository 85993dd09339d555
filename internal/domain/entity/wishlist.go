// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a named, owned collection of desired products tied to an occasion.
// It is owned by exactly one user for its entire lifetime; ownership is set at
// creation and is never changed through any update path.
type Wishlist struct {
	ID           int64      // The unique identifier for the wishlist.
	UserID       uuid.UUID  // The owning user. Immutable after creation.
	Title        string     // Short display title. Required.
	Description  string     // Free-text description. May be empty.
	OccasionDate *time.Time // The date of the occasion the list is for, if any.
	Address      string     // Delivery or event address. May be empty.
	Products     []*Product // The products attached to this wishlist.
	CreatedAt    time.Time  // Timestamp of when this wishlist was created.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}
