package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardvault/catalogsync/internal/auth"
)

type roleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new PostgreSQL role store
func NewRoleRepository(db *pgxpool.Pool) auth.RoleStore {
	return &roleRepository{db: db}
}

// GetRole returns the stored role for a user, or "" when none is assigned.
// A missing row is not an error: most users simply have no elevated role.
func (r *roleRepository) GetRole(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT role
		FROM user_roles
		WHERE user_id = $1
	`

	var role string
	err := r.db.QueryRow(ctx, query, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToGetRole, err)
	}
	return role, nil
}
