package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToUpsertSet  = "failed to upsert set"
	ErrMsgFailedToUpsertCard = "failed to upsert card"
)

// Error Messages - Sync Run Operations
const (
	ErrMsgFailedToMarshalDetails   = "failed to marshal details"
	ErrMsgFailedToUnmarshalDetails = "failed to unmarshal details"
	ErrMsgFailedToInsertRun        = "failed to insert sync run"
	ErrMsgFailedToFinishRun        = "failed to finish sync run"
	ErrMsgFailedToQueryRuns        = "failed to query sync runs"
)

// Error Messages - Role Operations
const (
	ErrMsgFailedToGetRole = "failed to get user role"
)
