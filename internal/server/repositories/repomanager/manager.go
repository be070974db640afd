// Package repomanager vends repository implementations over a shared DBTX
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"grocerylist/internal/dbx"
	"grocerylist/internal/server/repositories/accounts"
	"grocerylist/internal/server/repositories/items"
)

type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Items(db dbx.DBTX) items.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
