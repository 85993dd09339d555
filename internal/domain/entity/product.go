// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is an item inside a wishlist. It has no identity of its own beyond
// its wishlist: deleting the wishlist deletes its products, and within a
// wishlist two products with identical fields are considered the same product.
type Product struct {
	ID         int64     // The unique identifier for the product.
	WishlistID int64     // The wishlist this product belongs to.
	Name       string    // Display name of the desired item. Required.
	Priority   Priority  // Optional priority. Empty means unset.
	Price      float64   // Price with two decimal places of precision.
	Link       string    // Optional URL to the item. May be empty.
	Notes      string    // Free-text notes. May be empty.
	CreatedAt  time.Time // Timestamp of when this product was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
