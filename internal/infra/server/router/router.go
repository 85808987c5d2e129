// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	taxRecordController  *controller.TaxRecordController
	budgetController     *controller.BudgetController
	estatePlanController *controller.EstatePlanController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	taxRecordController *controller.TaxRecordController,
	budgetController *controller.BudgetController,
	estatePlanController *controller.EstatePlanController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		taxRecordController:  taxRecordController,
		budgetController:     budgetController,
		estatePlanController: estatePlanController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// User routes (require authentication)
		if r.authController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.PATCH("/me/preferences", r.authController.UpdatePreferences)
			}
		}

		// Tax record routes (require authentication)
		if r.taxRecordController != nil && r.authMiddleware != nil {
			taxRecords := v1.Group("/tax-records")
			taxRecords.Use(r.authMiddleware.Authenticate())
			{
				taxRecords.GET("", r.taxRecordController.List)
				taxRecords.POST("", r.taxRecordController.Create)
				taxRecords.GET("/:id", r.taxRecordController.Get)
				taxRecords.PATCH("/:id", r.taxRecordController.Update)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				// Static paths before the :id wildcard
				budgets.GET("/summary", r.budgetController.Summary)
				budgets.GET("/recurring/overdue", r.budgetController.ListOverdueRecurring)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.POST("/:id/transactions", r.budgetController.AddTransaction)
			}
		}

		// Estate plan routes (require authentication)
		if r.estatePlanController != nil && r.authMiddleware != nil {
			estatePlans := v1.Group("/estate-plans")
			estatePlans.Use(r.authMiddleware.Authenticate())
			{
				estatePlans.GET("", r.estatePlanController.List)
				estatePlans.POST("", r.estatePlanController.Create)
				estatePlans.GET("/reviews/due", r.estatePlanController.ListNeedingReview)
				estatePlans.GET("/:id", r.estatePlanController.Get)
				estatePlans.PATCH("/:id", r.estatePlanController.Update)
			}
		}
	}
}
