// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/money-manager/backend/internal/integration/entrypoint/controller"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		goalController:        goalController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	// Logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/api/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.authController.Signup)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		auth.PUT("/profile", r.authMiddleware.Authenticate(), r.authController.UpdateProfile)
	}

	transactions := api.Group("/transactions")
	transactions.Use(r.authMiddleware.Authenticate())
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/stats", r.dashboardController.GetStats)
		transactions.GET("/analytics", r.dashboardController.GetAnalytics)
		transactions.GET("/report", r.dashboardController.GetReport)
		transactions.GET("/export", r.transactionController.Export)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	categories := api.Group("/categories")
	categories.Use(r.authMiddleware.Authenticate())
	{
		categories.GET("", r.categoryController.List)
	}

	budgets := api.Group("/budgets")
	budgets.Use(r.authMiddleware.Authenticate())
	{
		budgets.GET("", r.budgetController.List)
		budgets.POST("", r.budgetController.Create)
		budgets.PUT("/:id", r.budgetController.Update)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	goals := api.Group("/goals")
	goals.Use(r.authMiddleware.Authenticate())
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.PUT("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.POST("/:id/add", r.goalController.Add)
	}
}
