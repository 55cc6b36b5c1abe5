package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/recommending"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/ruling"
	apiErrors "github.com/vfg2006/ad-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
)

// GenerateRecommendation runs the full generation pipeline for a workspace.
func GenerateRecommendation(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleOperator)
		if workspaceID == "" {
			return
		}

		recommendationID, err := service.GenerateRecommendation(r.Context(), workspaceID)
		if err != nil {
			handleRecommendationError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, map[string]string{
			"recommendation_id": recommendationID,
		})
	}
}

func ListRecommendations(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleViewer)
		if workspaceID == "" {
			return
		}

		limit, _ := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)

		recommendations, err := service.ListRecommendations(r.Context(), workspaceID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to list recommendations")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list recommendations", nil)
			return
		}

		respondJSON(w, http.StatusOK, recommendations)
	}
}

func GetRecommendation(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleViewer)
		if workspaceID == "" {
			return
		}

		recommendation, err := service.GetRecommendation(r.Context(), workspaceID, pathParam(r, "recommendationId"))
		if err != nil {
			handleRecommendationError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, recommendation)
	}
}

// transitionHandler builds a handler for one lifecycle transition call.
func transitionHandler(authorizer authorizing.Authorizer, transition func(r *http.Request, workspaceID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspaceID, _ := authorizeWorkspace(w, r, authorizer, domain.RoleOperator)
		if workspaceID == "" {
			return
		}

		if err := transition(r, workspaceID); err != nil {
			handleRecommendationError(w, r, err)
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}

func ProposeRecommendation(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return transitionHandler(authorizer, func(r *http.Request, workspaceID string) error {
		return service.ProposeRecommendation(r.Context(), workspaceID, pathParam(r, "recommendationId"))
	})
}

func ApproveRecommendation(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return transitionHandler(authorizer, func(r *http.Request, workspaceID string) error {
		return service.ApproveRecommendation(r.Context(), workspaceID, pathParam(r, "recommendationId"))
	})
}

func RejectRecommendation(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return transitionHandler(authorizer, func(r *http.Request, workspaceID string) error {
		return service.RejectRecommendation(r.Context(), workspaceID, pathParam(r, "recommendationId"))
	})
}

func ApproveAction(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return transitionHandler(authorizer, func(r *http.Request, workspaceID string) error {
		return service.ApproveAction(r.Context(), workspaceID, pathParam(r, "recommendationId"), pathParam(r, "actionId"))
	})
}

func RejectAction(service recommending.Recommender, authorizer authorizing.Authorizer) http.HandlerFunc {
	return transitionHandler(authorizer, func(r *http.Request, workspaceID string) error {
		return service.RejectAction(r.Context(), workspaceID, pathParam(r, "recommendationId"), pathParam(r, "actionId"))
	})
}

func handleRecommendationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ruling.ErrProfileNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrProfileNotConfigured, "configure the business profile first", nil)
	case errors.Is(err, ruling.ErrGuardrailsNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrGuardrailsNotConfigured, "configure the guardrails first", nil)
	case errors.Is(err, recommending.ErrNoEntityData):
		apiErrors.WriteError(w, apiErrors.ErrNoEntityData, "no entity data available in the analysis window", nil)
	case errors.Is(err, recommending.ErrSchemaViolation):
		apiErrors.WriteError(w, apiErrors.ErrSchemaViolation, "generation produced an invalid payload", nil)
	case errors.Is(err, recommending.ErrRecommendationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecommendationNotFound, "recommendation not found", nil)
	case errors.Is(err, recommending.ErrInvalidTransition),
		errors.Is(err, recommending.ErrActionNotPending):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, err.Error(), nil)
	case errors.Is(err, recommending.ErrActionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "proposed action not found", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Recommendation operation failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "recommendation operation failed", nil)
	}
}
