package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocerylist/internal/common"
	"grocerylist/internal/dbx"
	"grocerylist/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.GroceryItem) (*models.GroceryItem, error) {

	query :=
		`INSERT INTO grocery_items (id, owner_id, name, done)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Done).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.GroceryItem, error) {
	query :=
		`SELECT id, owner_id, name, done, created_at FROM grocery_items
		 WHERE owner_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	// empty list marshals as [], not null
	result := make([]*models.GroceryItem, 0)
	for rows.Next() {
		item := &models.GroceryItem{}
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Done, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.GroceryItem, error) {
	query :=
		`SELECT id, owner_id, name, done, created_at FROM grocery_items
		 WHERE id = $1 AND owner_id = $2
		 `

	item := &models.GroceryItem{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&item.ID, &item.OwnerID, &item.Name, &item.Done, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) SetDone(ctx context.Context, id, ownerID string, done bool) (*models.GroceryItem, error) {
	query :=
		`UPDATE grocery_items SET done = $3
		 WHERE id = $1 AND owner_id = $2
		 RETURNING id, owner_id, name, done, created_at
		 `

	item := &models.GroceryItem{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID, done).
		Scan(&item.ID, &item.OwnerID, &item.Name, &item.Done, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// DeleteByIDAndOwner removes the item if it exists and belongs to ownerID.
// Deleting a missing or foreign item is a no-op, not an error.
func (r *PostgresRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	query :=
		`DELETE FROM grocery_items
		 WHERE id = $1 AND owner_id = $2
		 `

	_, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
