package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"github.com/vfg2006/ad-pilot-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("Failed to encode response")
	}
}

// claimsFromRequest reads the authenticated user's claims placed in the
// context by the auth middleware.
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// pathParam reads a named httprouter parameter from the request context.
func pathParam(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName(name)
}

// authorizeWorkspace resolves the caller and checks workspace membership at
// minRole. Writes the error response itself; callers just bail out on "".
func authorizeWorkspace(w http.ResponseWriter, r *http.Request, authorizer authorizing.Authorizer, minRole domain.Role) (workspaceID, userID string) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
		return "", ""
	}

	workspaceID = pathParam(r, "id")
	if workspaceID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "workspace id is required", nil)
		return "", ""
	}

	if err := authorizer.CheckWorkspaceAccess(r.Context(), workspaceID, claims.UserID, minRole); err != nil {
		switch err {
		case authorizing.ErrWorkspaceNotFound:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "workspace not found", nil)
		case authorizing.ErrAccessDenied:
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "access to workspace denied", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("Workspace access check failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to check workspace access", nil)
		}
		return "", ""
	}

	return workspaceID, claims.UserID
}
