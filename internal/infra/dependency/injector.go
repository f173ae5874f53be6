// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"gorm.io/gorm"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/application/usecase/auth"
	"github.com/money-manager/backend/internal/application/usecase/budget"
	"github.com/money-manager/backend/internal/application/usecase/category"
	"github.com/money-manager/backend/internal/application/usecase/dashboard"
	"github.com/money-manager/backend/internal/application/usecase/goal"
	"github.com/money-manager/backend/internal/application/usecase/transaction"
	infradb "github.com/money-manager/backend/internal/infra/db"
	"github.com/money-manager/backend/internal/infra/server/router"
	"github.com/money-manager/backend/internal/integration/adapters"
	"github.com/money-manager/backend/internal/integration/entrypoint/controller"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/money-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Router           *router.Router
	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock uses the wall clock.
func NewInjector(cfg *config.Config, db *gorm.DB, rateLimitStore adapter.RateLimitStore, clock adapter.Clock) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Password.HashCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo, passwordService, tokenService, clock)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, clock)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(listTransactionsUseCase)

	// Create dashboard use cases
	getStatsUseCase := dashboard.NewGetStatsUseCase(transactionRepo)
	getAnalyticsUseCase := dashboard.NewGetAnalyticsUseCase(transactionRepo, clock)
	getReportUseCase := dashboard.NewGetReportUseCase(transactionRepo, clock)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo, clock)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, clock)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, clock)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, clock)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, clock)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addToGoalUseCase := goal.NewAddToGoalUseCase(goalRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(func(ctx context.Context) error {
		return infradb.Ping(ctx, db)
	}, clock)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		getCurrentUserUseCase,
		updateProfileUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
		clock,
	)

	dashboardController := controller.NewDashboardController(
		getStatsUseCase,
		getAnalyticsUseCase,
		getReportUseCase,
	)

	categoryController := controller.NewCategoryController(category.NewListCategoriesUseCase())

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		addToGoalUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(
		rateLimitStore,
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.Window,
		cfg.RateLimit.Enabled,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		dashboardController,
		categoryController,
		budgetController,
		goalController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		LoginRateLimiter: loginRateLimiter,
	}
}
