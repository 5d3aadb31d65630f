package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/cardvault/catalogsync/migrations"
)

// RunMigrations applies the embedded goose migrations. It uses a dedicated
// database/sql connection because goose does not speak the pgx pool API.
func RunMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedOpenMigrationDB, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSetDialect, err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedApplyMigrations, err)
	}

	slog.Info(LogMsgMigrationsApplied)
	return nil
}
