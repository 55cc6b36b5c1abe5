package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/api/handler/router"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/executing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/recommending"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func BusinessProfiles(profileRepo repository.BusinessProfileRepository, authorizer authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/profile",
			Method:  http.MethodGet,
			Handler: GetBusinessProfile(profileRepo, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/profile",
			Method:  http.MethodPut,
			Handler: UpsertBusinessProfile(profileRepo, authorizer),
		},
	}
}

func Guardrails(guardrailsRepo repository.GuardrailsRepository, authorizer authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/guardrails",
			Method:  http.MethodGet,
			Handler: GetGuardrails(guardrailsRepo, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/guardrails",
			Method:  http.MethodPut,
			Handler: UpsertGuardrails(guardrailsRepo, authorizer),
		},
	}
}

func Recommendations(service recommending.Recommender, authorizer authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/recommendations",
			Method:  http.MethodPost,
			Handler: GenerateRecommendation(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations",
			Method:  http.MethodGet,
			Handler: ListRecommendations(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId",
			Method:  http.MethodGet,
			Handler: GetRecommendation(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/propose",
			Method:  http.MethodPost,
			Handler: ProposeRecommendation(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/approve",
			Method:  http.MethodPost,
			Handler: ApproveRecommendation(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/reject",
			Method:  http.MethodPost,
			Handler: RejectRecommendation(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/actions/:actionId/approve",
			Method:  http.MethodPost,
			Handler: ApproveAction(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/actions/:actionId/reject",
			Method:  http.MethodPost,
			Handler: RejectAction(service, authorizer),
		},
	}
}

func Executions(service executing.Executor, authorizer authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/execute",
			Method:  http.MethodPost,
			Handler: RunExecution(service, authorizer),
		},
		{
			Path:    "/v1/workspaces/:id/recommendations/:recommendationId/executions",
			Method:  http.MethodGet,
			Handler: ListExecutionRuns(service, authorizer),
		},
	}
}

func AuditLogs(auditRepo repository.AuditLogRepository, authorizer authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/audit-logs",
			Method:  http.MethodGet,
			Handler: ListAuditLogs(auditRepo, authorizer),
		},
	}
}

func OpsTasks(taskRepo repository.TaskRepository, authorizer authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/tasks",
			Method:  http.MethodGet,
			Handler: ListOpsTasks(taskRepo, authorizer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/recommendation-sync",
			Method:  http.MethodPost,
			Handler: TriggerRecommendationSync(services),
		},
		{
			Path:    "/v1/cron/recommendation-sync",
			Method:  http.MethodGet,
			Handler: RecommendationSyncStatus(services),
		},
	}
}
