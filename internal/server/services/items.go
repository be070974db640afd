package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"grocerylist/internal/common"
	"grocerylist/internal/dbx"
	"grocerylist/internal/server/models"
	"grocerylist/internal/server/repositories/repomanager"
)

// ItemService implements owner-scoped grocery item operations. Ownership is
// enforced in the repository layer: every query is keyed on (id, owner_id),
// so a foreign item is indistinguishable from a missing one.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// List returns all items owned by accountID in insertion order.
func (s *ItemService) List(ctx context.Context, accountID string) ([]*models.GroceryItem, error) {
	repo := s.repomanager.Items(s.db)

	result, err := repo.ListByOwner(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	return result, nil
}

// Add creates a new undone item owned by accountID.
func (s *ItemService) Add(ctx context.Context, accountID, name string) (*models.GroceryItem, error) {

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", common.ErrValidation)
	}

	item := &models.GroceryItem{
		ID:      uuid.NewString(),
		OwnerID: accountID,
		Name:    name,
		Done:    false,
	}

	repo := s.repomanager.Items(s.db)

	item, err := repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}

	return item, nil
}

// Toggle flips the done flag of the item and returns the updated item.
// A missing or foreign item yields common.ErrNotFound.
func (s *ItemService) Toggle(ctx context.Context, accountID, itemID string) (*models.GroceryItem, error) {

	var updated *models.GroceryItem

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		item, err := repo.GetByIDAndOwner(ctx, itemID, accountID)
		if err != nil {
			return err
		}

		updated, err = repo.SetDone(ctx, itemID, accountID, !item.Done)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error toggling item: %w", err)
	}

	return updated, nil
}

// Delete removes the item if it exists and belongs to accountID. Deleting a
// missing or foreign item succeeds silently, which keeps the operation
// idempotent.
func (s *ItemService) Delete(ctx context.Context, accountID, itemID string) error {
	repo := s.repomanager.Items(s.db)

	if err := repo.DeleteByIDAndOwner(ctx, itemID, accountID); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	return nil
}
