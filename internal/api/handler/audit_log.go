package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

// ListAuditLogs returns the workspace's audit trail, newest first.
func ListAuditLogs(auditRepo repository.AuditLogRepository, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleViewer)
		if workspaceID == "" {
			return
		}

		limit, _ := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)

		entries, err := auditRepo.ListByWorkspace(r.Context(), workspaceID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to list audit logs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list audit logs", nil)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
