package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo/kakeibo/internal/config"
	"github.com/kakeibo/kakeibo/internal/utils"
	"github.com/kakeibo/kakeibo/pkg/analytics"
	"github.com/kakeibo/kakeibo/pkg/dashboard"
	"github.com/kakeibo/kakeibo/pkg/expense"
	"github.com/kakeibo/kakeibo/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	ExpenseRepo    expense.Repository
	ExpenseService *expense.ServiceImpl
	ExpenseHandler *expense.Handler

	AnalyticsService   *analytics.ServiceImpl
	CsvSummaryRenderer *analytics.CsvSummaryRendererImpl
	AnalyticsHandler   *analytics.Handler

	DashboardService *dashboard.ServiceImpl
	DashboardHandler *dashboard.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.Clock = &utils.SystemClock{}
	deps.AnalyticsService = analytics.NewAnalyticsService(deps.ExpenseService, deps.Clock)
	deps.CsvSummaryRenderer = analytics.NewCsvSummaryRenderer()
	deps.AnalyticsHandler = analytics.NewHandler(deps.AnalyticsService, deps.CsvSummaryRenderer)

	deps.DashboardService = dashboard.NewDashboardService(deps.ExpenseService, deps.Clock)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	return deps
}
