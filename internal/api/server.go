package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/api/handler"
	"github.com/vfg2006/ad-pilot-api/internal/api/handler/router"
	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/internal/scheduler"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/executing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/recommending"
	"github.com/vfg2006/ad-pilot-api/pkg/log"
	"github.com/vfg2006/ad-pilot-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

type Repositories struct {
	BusinessProfile repository.BusinessProfileRepository
	Guardrails      repository.GuardrailsRepository
	AuditLog        repository.AuditLogRepository
	Task            repository.TaskRepository
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	authorizer authorizing.Authorizer,
	recommender recommending.Recommender,
	executor executing.Executor,
	repos Repositories,
	recommendationSyncService *scheduler.RecommendationSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RecommendationSyncService: recommendationSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.BusinessProfiles(repos.BusinessProfile, authorizer)...),
		router.WithRoutes(handler.Guardrails(repos.Guardrails, authorizer)...),
		router.WithRoutes(handler.Recommendations(recommender, authorizer)...),
		router.WithRoutes(handler.Executions(executor, authorizer)...),
		router.WithRoutes(handler.AuditLogs(repos.AuditLog, authorizer)...),
		router.WithRoutes(handler.OpsTasks(repos.Task, authorizer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Interrupt signal received")
	case <-ctx.Done():
		log.L.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithField("timeout", "15s").Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Error during server shutdown")
		return err
	}

	log.L.Info("Server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
