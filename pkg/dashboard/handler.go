package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/kakeibo/kakeibo/pkg/analytics"
	"github.com/kakeibo/kakeibo/pkg/user"
)

type SummaryDTO struct {
	ThisWeekTotal  float64 `json:"thisWeekTotal"`
	ThisMonthTotal float64 `json:"thisMonthTotal"`
	WeekPeriod     string  `json:"weekPeriod"`
	MonthPeriod    string  `json:"monthPeriod"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	locale := analytics.LocaleJa
	if u, err := user.Current(r.Context()); err == nil && u.Settings.Locale == string(analytics.LocaleEn) {
		locale = analytics.LocaleEn
	}

	summary, err := h.service.GetSummary(r.Context(), locale)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryDTO{
		ThisWeekTotal:  summary.ThisWeekTotal,
		ThisMonthTotal: summary.ThisMonthTotal,
		WeekPeriod:     summary.WeekPeriod,
		MonthPeriod:    summary.MonthPeriod,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
