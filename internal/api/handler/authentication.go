package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authenticating"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe returns the profile of the authenticated user.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to load user profile")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to load user profile", nil)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid credentials", nil)
	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "user is disabled", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "user not found", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "login failed", nil)
	}
}
