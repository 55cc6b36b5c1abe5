package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/migrate"
	"github.com/vfg2006/ad-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-pilot-api/infrastructure/integrator/textgen"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/api"
	"github.com/vfg2006/ad-pilot-api/internal/config"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"github.com/vfg2006/ad-pilot-api/internal/scheduler"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/executing"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/recommending"
	"github.com/vfg2006/ad-pilot-api/internal/usecases/ruling"
	"github.com/vfg2006/ad-pilot-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migrate.RunMigrations(pgConn.DB, cfg.Database.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("Failed to run database migrations")
	}

	userRepo := repository.NewUserRepository(pgConn)
	workspaceRepo := repository.NewWorkspaceRepository(pgConn)
	profileRepo := repository.NewBusinessProfileRepository(pgConn)
	guardrailsRepo := repository.NewGuardrailsRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)
	executionRepo := repository.NewExecutionRepository(pgConn)
	auditLogRepo := repository.NewAuditLogRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	authorizer := authorizing.NewService(workspaceRepo)

	metaClient := metaclient.NewClient(cfg)
	googleClient := googleclient.NewClient(cfg)

	generator, err := textgen.NewService(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize the text generation client")
	}

	decisionMetrics := metrics.New()

	analyzer := analyzing.NewService(performanceRepo)
	ruler := ruling.NewService(profileRepo, guardrailsRepo, ruleThresholds(cfg))

	recommender := recommending.NewService(
		analyzer,
		ruler,
		generator,
		profileRepo,
		guardrailsRepo,
		recommendationRepo,
		decisionMetrics,
		cfg.RecommendationSync.WindowDays,
	)

	executor := executing.NewService(
		recommendationRepo,
		executionRepo,
		performanceRepo,
		guardrailsRepo,
		profileRepo,
		auditLogRepo,
		taskRepo,
		metaClient,
		googleClient,
		decisionMetrics,
	)

	recommendationSyncService := scheduler.NewRecommendationSyncService(
		workspaceRepo,
		recommender,
		cfg,
	)

	if err := recommendationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the recommendation sync scheduler")
	} else {
		logrus.Info("Recommendation sync scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		authorizer,
		recommender,
		executor,
		api.Repositories{
			BusinessProfile: profileRepo,
			Guardrails:      guardrailsRepo,
			AuditLog:        auditLogRepo,
			Task:            taskRepo,
		},
		recommendationSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func ruleThresholds(cfg *config.Config) domain.RuleThresholds {
	return domain.RuleThresholds{
		ReduceBudgetChange: cfg.Rules.ReduceBudgetChange,
		ScaleBudgetChange:  cfg.Rules.ScaleBudgetChange,
		ScaleRoasFactor:    cfg.Rules.ScaleRoasFactor,
		ScaleCpaFactor:     cfg.Rules.ScaleCpaFactor,
		FatigueFrequency:   cfg.Rules.FatigueFrequency,
		FatigueCTR:         cfg.Rules.FatigueCTR,
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
