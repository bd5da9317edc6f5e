package repomanager

import (
	"context"
	"database/sql"

	"github.com/Jovinull/MyGastronomy/internal/dbx"
	"github.com/Jovinull/MyGastronomy/internal/server/repositories/users"
)

// RepositoryManager prepares a database for use and vends the user
// directory bound to a connection or transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
