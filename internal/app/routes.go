package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kakeibo/kakeibo/internal/config"
)

// RegisterRoutes mounts all API endpoints on the router.
func RegisterRoutes(router *mux.Router, deps *Dependencies, cfg config.Application) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/expenses", deps.ExpenseHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/expenses", deps.ExpenseHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/expenses/{id}", deps.ExpenseHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/expenses/{id}", deps.ExpenseHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/dashboard/summary", deps.DashboardHandler.GetSummary).Methods(http.MethodGet)

	api.HandleFunc("/analytics/summary", deps.AnalyticsHandler.GetSummary).Methods(http.MethodGet)
	api.HandleFunc("/analytics/categories", deps.AnalyticsHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/analytics/daily", deps.AnalyticsHandler.GetDaily).Methods(http.MethodGet)
	api.HandleFunc("/analytics/weekly", deps.AnalyticsHandler.GetWeekly).Methods(http.MethodGet)
	api.HandleFunc("/analytics/monthly", deps.AnalyticsHandler.GetMonthly).Methods(http.MethodGet)
	api.HandleFunc("/analytics/comparison", deps.AnalyticsHandler.GetComparison).Methods(http.MethodGet)

	api.HandleFunc("/user/current", deps.UserHandler.CurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/user/current", deps.UserHandler.UpdateUser).Methods(http.MethodPut)
}
