package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cardvault/catalogsync/internal/auth"
	"github.com/cardvault/catalogsync/internal/catalog"
	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/logger"
	"github.com/cardvault/catalogsync/internal/synclog"
)

// TriggerSyncRequest is the optional payload for a sync trigger.
// With no payload the run targets the starter allow-list.
type TriggerSyncRequest struct {
	Sets     []string `json:"sets" validate:"omitempty,max=100,dive,setid"`
	FullSync bool     `json:"fullSync"`
}

// TriggerSyncResponse reports the outcome of a completed run
type TriggerSyncResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SetsSynced  int    `json:"sets_synced"`
	CardsSynced int    `json:"cards_synced"`
}

// SyncHandler serves the admin synchronization endpoints
type SyncHandler struct {
	syncService catalog.Service
	ledger      synclog.Service
	gate        catalog.Authorizer
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService catalog.Service, ledger synclog.Service, gate catalog.Authorizer) *SyncHandler {
	return &SyncHandler{syncService: syncService, ledger: ledger, gate: gate}
}

// HandleTriggerSync runs a catalog synchronization and blocks until it finishes
// @Summary Trigger a catalog sync
// @Description Pulls sets and cards from the external catalog into the local store. Admin only.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body TriggerSyncRequest false "Sync options"
// @Success 200 {object} TriggerSyncResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/admin/sync [post]
func (h *SyncHandler) HandleTriggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TriggerSyncRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Trigger sync"); err != nil {
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return
	}

	scope := deriveScope(req)
	log.Info("Sync requested",
		"user_id", identity.UserID,
		"scope", string(scope.Kind),
		"set_count", len(req.Sets))

	result, err := h.syncService.Synchronize(r.Context(), scope, identity)
	if err != nil {
		respondServiceError(w, r, "Sync", err)
		return
	}

	respondJSON(w, http.StatusOK, TriggerSyncResponse{
		Success:     true,
		Message:     "Sync completed",
		SetsSynced:  result.SetsSynced,
		CardsSynced: result.CardsSynced,
	})
}

// deriveScope maps the request options to a run scope. Full sync wins over
// an explicit list; an empty request falls back to the starter allow-list.
func deriveScope(req TriggerSyncRequest) domain.Scope {
	switch {
	case req.FullSync:
		return domain.NewFullScope()
	case len(req.Sets) > 0:
		return domain.NewExplicitScope(req.Sets)
	default:
		return domain.NewStarterScope()
	}
}

// HandleListRuns returns the most recent ledger entries
// @Summary List recent sync runs
// @Description Returns the run ledger, newest first. Admin only.
// @Tags sync
// @Produce json
// @Param limit query int false "Maximum entries to return" default(10)
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/sync/runs [get]
func (h *SyncHandler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return
	}
	if err := h.gate.Authorize(r.Context(), identity); err != nil {
		respondServiceError(w, r, "List runs", err)
		return
	}

	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(synclog.DefaultListLimit))
	limit, err := parseListLimit(limitStr)
	if err != nil {
		respondServiceError(w, r, "List runs", err)
		return
	}

	runs, err := h.ledger.Latest(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "List runs", err)
		return
	}
	if runs == nil {
		runs = []domain.SyncRun{}
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: runs})
}

// parseListLimit validates the limit query parameter against the ledger bounds
func parseListLimit(raw string) (int, error) {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidInput)
	}
	if limit < 1 || limit > synclog.MaxListLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, synclog.MaxListLimit)
	}
	return limit, nil
}
