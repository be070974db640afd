package models

import "time"

// GroceryItem is a checklist entry owned by exactly one account. OwnerID is
// set once at creation and never reassigned.
type GroceryItem struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"-"`
}
