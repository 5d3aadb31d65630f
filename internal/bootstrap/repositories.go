package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardvault/catalogsync/internal/auth"
	"github.com/cardvault/catalogsync/internal/catalog"
	"github.com/cardvault/catalogsync/internal/database/postgres"
	"github.com/cardvault/catalogsync/internal/synclog"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Catalog catalog.Repository
	SyncLog synclog.Repository
	Roles   auth.RoleStore
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog: postgres.NewCatalogRepository(dbPool),
		SyncLog: postgres.NewSyncLogRepository(dbPool),
		Roles:   postgres.NewRoleRepository(dbPool),
	}
}
