package handler

import (
	"net/http"

	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

func GetGuardrails(guardrailsRepo repository.GuardrailsRepository, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleViewer)
		if workspaceID == "" {
			return
		}

		guardrails, err := guardrailsRepo.GetByWorkspaceID(r.Context(), workspaceID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to load guardrails")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load guardrails", nil)
			return
		}
		if guardrails == nil {
			apiErrors.WriteError(w, apiErrors.ErrGuardrailsNotConfigured, "guardrails not configured", nil)
			return
		}

		respondJSON(w, http.StatusOK, guardrails)
	}
}

func UpsertGuardrails(guardrailsRepo repository.GuardrailsRepository, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleAdmin)
		if workspaceID == "" {
			return
		}

		guardrails := &domain.Guardrails{}
		if err := json.NewDecoder(r.Body).Decode(guardrails); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		guardrails.WorkspaceID = workspaceID

		if err := guardrails.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := guardrailsRepo.SaveOrUpdate(r.Context(), guardrails); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to save guardrails")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to save guardrails", nil)
			return
		}

		respondJSON(w, http.StatusOK, guardrails)
	}
}
