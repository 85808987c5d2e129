// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/application/usecase/auth"
	"github.com/finance-planner/backend/internal/application/usecase/budget"
	"github.com/finance-planner/backend/internal/application/usecase/estate"
	"github.com/finance-planner/backend/internal/application/usecase/tax"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/adapters"
	"github.com/finance-planner/backend/internal/integration/alerts"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-planner/backend/internal/integration/notification"
	"github.com/finance-planner/backend/internal/integration/notification/templates"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Worker    *notification.Worker
	Scheduler *alerts.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case budget summaries are recomputed on
// every request instead of being cached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, sender adapter.NotificationSender) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	taxRepo := persistence.NewTaxRecordRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	estateRepo := persistence.NewEstatePlanRepository(db)
	notificationRepo := persistence.NewNotificationQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	clock := adapters.NewSystemClock()

	summaryCache := adapters.NewNoopSummaryCache()
	if redisClient != nil {
		summaryCache = adapters.NewSummaryCache(redisClient, cfg.Redis.SummaryTTL)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	updatePreferencesUseCase := auth.NewUpdatePreferencesUseCase(userRepo, clock)

	// Create tax record use cases
	createTaxRecordUseCase := tax.NewCreateTaxRecordUseCase(taxRepo, clock)
	getTaxRecordUseCase := tax.NewGetTaxRecordUseCase(taxRepo)
	listTaxRecordsUseCase := tax.NewListTaxRecordsUseCase(taxRepo)
	updateTaxRecordUseCase := tax.NewUpdateTaxRecordUseCase(taxRepo, clock)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, summaryCache, clock)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, summaryCache, clock)
	addTransactionUseCase := budget.NewAddTransactionUseCase(budgetRepo, summaryCache, clock)
	getSummaryUseCase := budget.NewGetSummaryUseCase(budgetRepo, summaryCache)
	listOverdueRecurringUseCase := budget.NewListOverdueRecurringUseCase(budgetRepo, clock)

	// Create estate plan use cases
	createEstatePlanUseCase := estate.NewCreateEstatePlanUseCase(estateRepo, clock)
	getEstatePlanUseCase := estate.NewGetEstatePlanUseCase(estateRepo)
	listEstatePlansUseCase := estate.NewListEstatePlansUseCase(estateRepo)
	updateEstatePlanUseCase := estate.NewUpdateEstatePlanUseCase(estateRepo, clock)
	listNeedingReviewUseCase := estate.NewListNeedingReviewUseCase(estateRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		updatePreferencesUseCase,
	)

	taxRecordController := controller.NewTaxRecordController(
		createTaxRecordUseCase,
		getTaxRecordUseCase,
		listTaxRecordsUseCase,
		updateTaxRecordUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		getBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		addTransactionUseCase,
		getSummaryUseCase,
		listOverdueRecurringUseCase,
	)

	estatePlanController := controller.NewEstatePlanController(
		createEstatePlanUseCase,
		getEstatePlanUseCase,
		listEstatePlansUseCase,
		updateEstatePlanUseCase,
		listNeedingReviewUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		taxRecordController,
		budgetController,
		estatePlanController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create notification worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	worker := notification.NewWorker(notificationRepo, sender, renderer, notification.WorkerConfig{
		PollInterval: cfg.Notification.PollInterval,
		BatchSize:    cfg.Notification.BatchSize,
	})

	// Create alert scheduler
	notificationService := notification.NewService(notificationRepo)
	scheduler := alerts.NewScheduler(budgetRepo, estateRepo, userRepo, notificationService, clock, alerts.SchedulerConfig{
		ScanInterval: cfg.Alerts.ScanInterval,
	})

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Worker:    worker,
		Scheduler: scheduler,
	}, nil
}
