package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/kakeibo/kakeibo/internal/rest"
	"github.com/kakeibo/kakeibo/pkg/user"
)

type CategoryAnalyticsDTO struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
}

type CategoriesResponseDTO struct {
	Breakdown []CategoryAnalyticsDTO `json:"breakdown"`
	PieChart  []PieChartData         `json:"pieChart"`
	BarChart  []BarChartData         `json:"barChart"`
}

type DailyBucketDTO struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type WeeklyBucketDTO struct {
	Week   string  `json:"week"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type MonthlyBucketDTO struct {
	Month  string  `json:"month"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type PeriodComparisonDTO struct {
	CurrentAmount    float64 `json:"currentAmount"`
	PreviousAmount   float64 `json:"previousAmount"`
	Difference       float64 `json:"difference"`
	PercentageChange float64 `json:"percentageChange"`
	IsIncrease       bool    `json:"isIncrease"`
}

type SummaryDTO struct {
	Period               string                 `json:"period"`
	Total                float64                `json:"total"`
	Average              float64                `json:"average"`
	ComparisonPercentage float64                `json:"comparisonPercentage"`
	TopCategory          string                 `json:"topCategory,omitempty"`
	Breakdown            []CategoryAnalyticsDTO `json:"breakdown"`
}

type Handler struct {
	service     Service
	csvRenderer SummaryRenderer
}

func NewHandler(service Service, csvRenderer SummaryRenderer) *Handler {
	return &Handler{service, csvRenderer}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	period, ok := periodFromRequest(w, r)
	if !ok {
		return
	}
	selectedMonth := r.URL.Query().Get("month")

	summary, err := h.service.GetSummary(r.Context(), period, selectedMonth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := h.csvRenderer.RenderSummary(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	period, ok := periodFromRequest(w, r)
	if !ok {
		return
	}
	selectedMonth := r.URL.Query().Get("month")
	dense := r.URL.Query().Has("dense")

	breakdown, err := h.service.GetCategories(r.Context(), period, selectedMonth, dense)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := CategoriesResponseDTO{
		Breakdown: breakdownToDTO(breakdown),
		PieChart:  ToPieChartData(breakdown),
		BarChart:  ToBarChartData(breakdown),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	buckets, err := h.service.GetDaily(r.Context(), localeFromRequest(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]DailyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		dtos = append(dtos, DailyBucketDTO{Date: b.Date, Label: b.Label, Amount: b.Amount})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	buckets, err := h.service.GetWeekly(r.Context(), localeFromRequest(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]WeeklyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		dtos = append(dtos, WeeklyBucketDTO{Week: b.Week, Label: b.Label, Amount: b.Amount})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	buckets, err := h.service.GetMonthly(r.Context(), localeFromRequest(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]MonthlyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		dtos = append(dtos, MonthlyBucketDTO{Month: b.Month, Label: b.Label, Amount: b.Amount})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	period, ok := periodFromRequest(w, r)
	if !ok {
		return
	}

	comparison, err := h.service.GetComparison(r.Context(), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PeriodComparisonDTO{
		CurrentAmount:    comparison.CurrentAmount,
		PreviousAmount:   comparison.PreviousAmount,
		Difference:       comparison.Difference,
		PercentageChange: comparison.PercentageChange,
		IsIncrease:       comparison.IsIncrease,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// periodFromRequest parses the period query parameter, defaulting to monthly.
// It writes a 400 response and returns false for unknown values.
func periodFromRequest(w http.ResponseWriter, r *http.Request) (Period, bool) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return PeriodMonthly, true
	}
	period := Period(raw)
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return period, true
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid period",
		Details: "period must be one of daily, weekly, monthly",
	})
	return "", false
}

// localeFromRequest resolves the display locale: explicit lang query param
// first, then the current user's settings, then Japanese.
func localeFromRequest(r *http.Request) Locale {
	switch r.URL.Query().Get("lang") {
	case string(LocaleJa):
		return LocaleJa
	case string(LocaleEn):
		return LocaleEn
	}
	if u, err := user.Current(r.Context()); err == nil && u.Settings.Locale == string(LocaleEn) {
		return LocaleEn
	}
	return LocaleJa
}

func breakdownToDTO(breakdown []CategoryAnalytics) []CategoryAnalyticsDTO {
	dtos := make([]CategoryAnalyticsDTO, 0, len(breakdown))
	for _, item := range breakdown {
		dtos = append(dtos, CategoryAnalyticsDTO{
			Category:   item.Category.Name,
			Amount:     item.Amount,
			Count:      item.Count,
			Percentage: item.Percentage,
			Color:      item.Category.ChartColor,
			Icon:       item.Category.Icon,
		})
	}
	return dtos
}

func summaryToDTO(summary Summary) SummaryDTO {
	dto := SummaryDTO{
		Period:               string(summary.Period),
		Total:                summary.Total,
		Average:              summary.Average,
		ComparisonPercentage: summary.ComparisonPercentage,
		Breakdown:            breakdownToDTO(summary.Breakdown),
	}
	if summary.TopCategory != nil {
		dto.TopCategory = summary.TopCategory.Name
	}
	return dto
}
