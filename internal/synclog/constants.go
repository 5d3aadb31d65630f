package synclog

// JobNamePokemonSync is the ledger job name for catalog synchronization runs.
const JobNamePokemonSync = "pokemon-sync"

// DefaultListLimit bounds run-history queries when the caller gives no limit.
const DefaultListLimit = 10

// MaxListLimit caps how many ledger rows a single listing may request.
const MaxListLimit = 100

// Details payload field names
const (
	DetailFieldStartedBy   = "started_by"
	DetailFieldScope       = "scope"
	DetailFieldSetsSynced  = "sets_synced"
	DetailFieldCardsSynced = "cards_synced"
	DetailFieldError       = "error"
)

// Log messages
const (
	LogMsgRunStarted         = "Sync run started"
	LogMsgRunFinished        = "Sync run finished"
	LogMsgLedgerWriteFailed  = "Failed to finalize sync run ledger entry"
	LogMsgLedgerInsertFailed = "Failed to insert sync run ledger entry"
)
