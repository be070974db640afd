package items

import (
	"context"

	"grocerylist/internal/server/models"
)

// Repository persists grocery items. Every lookup and mutation is keyed on
// (id, owner_id), so an item belonging to another account is
// indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.GroceryItem, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.GroceryItem, error)
	SetDone(ctx context.Context, id, ownerID string, done bool) (*models.GroceryItem, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}
