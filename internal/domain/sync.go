package domain

import "time"

// RunStatus is the lifecycle state of a sync run.
// A run moves running -> success or running -> failed, exactly once.
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// SyncRun is one audit entry in the run ledger.
type SyncRun struct {
	ID          string                 `json:"id" db:"id"`
	JobName     string                 `json:"job_name" db:"job_name"`
	Status      RunStatus              `json:"status" db:"status"`
	StartedAt   time.Time              `json:"started_at" db:"started_at"`
	FinishedAt  *time.Time             `json:"finished_at,omitempty" db:"finished_at"`
	Details     map[string]interface{} `json:"details,omitempty" db:"details"`
	TriggeredBy string                 `json:"triggered_by" db:"triggered_by"`
}

// ScopeKind selects which sets a synchronization run targets.
type ScopeKind string

const (
	ScopeStarter  ScopeKind = "starter"
	ScopeExplicit ScopeKind = "explicit"
	ScopeFull     ScopeKind = "full"
)

// StarterSets is the fixed allow-list used by the starter scope.
var StarterSets = []string{"base1", "base2", "base3", "base4", "base5", "gym1", "gym2", "basep"}

// Scope is the target of a synchronization run.
type Scope struct {
	Kind   ScopeKind
	SetIDs []string // populated for starter and explicit scopes
}

// NewStarterScope returns a scope covering the starter allow-list.
func NewStarterScope() Scope {
	return Scope{Kind: ScopeStarter, SetIDs: StarterSets}
}

// NewExplicitScope returns a scope covering the given set identifiers.
func NewExplicitScope(setIDs []string) Scope {
	return Scope{Kind: ScopeExplicit, SetIDs: setIDs}
}

// NewFullScope returns a scope covering every set the catalog reports.
func NewFullScope() Scope {
	return Scope{Kind: ScopeFull}
}

// Allows reports whether a set identifier is inside the scope.
func (s Scope) Allows(setID string) bool {
	if s.Kind == ScopeFull {
		return true
	}
	for _, id := range s.SetIDs {
		if id == setID {
			return true
		}
	}
	return false
}

// Identity is the resolved caller of a privileged operation.
// Role is the role claim attached to the credential; HasRoleClaim
// distinguishes "claim says user" from "no claim at all".
type Identity struct {
	UserID       string
	Role         string
	HasRoleClaim bool
}

// SyncResult is the caller-facing summary of a successful run.
type SyncResult struct {
	SetsSynced  int `json:"sets_synced"`
	CardsSynced int `json:"cards_synced"`
}
