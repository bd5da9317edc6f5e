package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/dbx"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE raised when the email index rejects a row.
const uniqueViolation = "23505"

// PostgresRepository stores users in the users table. Email uniqueness is
// enforced by the table's unique index.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if !user.HasCredentials() {
		return nil, common.ErrorIncompleteRecord
	}

	query :=
		`INSERT INTO users (email, derived_key, salt)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	created := &models.User{Email: user.Email, DerivedKey: user.DerivedKey, Salt: user.Salt}
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.DerivedKey, user.Salt).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, derived_key, salt, created_at FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.DerivedKey, &user.Salt, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
