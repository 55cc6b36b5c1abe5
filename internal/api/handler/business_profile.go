package handler

import (
	"net/http"

	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

// GetBusinessProfile returns the workspace's business profile or 404-style
// precondition info when none is configured yet.
func GetBusinessProfile(profileRepo repository.BusinessProfileRepository, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleViewer)
		if workspaceID == "" {
			return
		}

		profile, err := profileRepo.GetByWorkspaceID(r.Context(), workspaceID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to load business profile")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load business profile", nil)
			return
		}
		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrProfileNotConfigured, "business profile not configured", nil)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

// UpsertBusinessProfile creates or replaces the workspace's business profile.
func UpsertBusinessProfile(profileRepo repository.BusinessProfileRepository, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleAdmin)
		if workspaceID == "" {
			return
		}

		profile := &domain.BusinessProfile{}
		if err := json.NewDecoder(r.Body).Decode(profile); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		profile.WorkspaceID = workspaceID

		if err := profile.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := profileRepo.SaveOrUpdate(r.Context(), profile); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to save business profile")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to save business profile", nil)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}
