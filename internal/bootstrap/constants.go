package bootstrap

// Log messages for application startup
const (
	LogMsgStartingCatalogSync = "Starting catalogsync"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgMigrationsApplied   = "Database migrations applied"
)

// Error messages for startup failures
const (
	ErrMsgFailedOpenMigrationDB = "failed to open migration connection"
	ErrMsgFailedSetDialect      = "failed to set migration dialect"
	ErrMsgFailedApplyMigrations = "failed to apply migrations"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
