package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/executing"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

type RunExecutionRequest struct {
	ActionIDs []string `json:"action_ids"`
}

// RunExecution executes approved actions of a recommendation. Requires
// OPERATOR or higher.
func RunExecution(service executing.Executor, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, userID := authorizeWorkspace(w, r, authorizer, domain.RoleOperator)
		if workspaceID == "" {
			return
		}

		var req RunExecutionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		if len(req.ActionIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "action_ids is required", nil)
			return
		}

		summary, err := service.RunExecution(r.Context(), workspaceID, pathParam(r, "recommendationId"), req.ActionIDs, userID)
		if err != nil {
			handleExecutionError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

func ListExecutionRuns(service executing.Executor, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleViewer)
		if workspaceID == "" {
			return
		}

		runs, err := service.ListRuns(r.Context(), workspaceID, pathParam(r, "recommendationId"))
		if err != nil {
			handleExecutionError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, runs)
	}
}

func handleExecutionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, executing.ErrNoApprovedActions):
		apiErrors.WriteError(w, apiErrors.ErrNoApprovedActions, "no approved actions to execute", nil)
	case errors.Is(err, executing.ErrExecutionInProgress):
		apiErrors.WriteError(w, apiErrors.ErrExecutionInProgress, "an execution is already in progress for this recommendation", nil)
	case errors.Is(err, executing.ErrDuplicateEntity):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateEntity, err.Error(), nil)
	case errors.Is(err, executing.ErrRecommendationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecommendationNotFound, "recommendation not found", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Execution operation failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "execution operation failed", nil)
	}
}
