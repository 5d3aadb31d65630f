package bootstrap

import (
	"context"
	"log/slog"

	"github.com/cardvault/catalogsync/internal/database"
	"github.com/cardvault/catalogsync/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so no new work arrives, then
// closes the database pool. Errors during shutdown are logged but do not
// stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
