package analytics

// PieChartData is a single pie slice. Zero-amount categories are omitted:
// a slice of size 0 would not render anyway.
type PieChartData struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Fill  string  `json:"fill"`
}

// BarChartData is a single category bar. Unlike the pie projection,
// zero-amount categories are kept, so a full legend renders bars of height 0.
type BarChartData struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Fill     string  `json:"fill"`
}

// LineChartData is one point of the monthly trend line.
type LineChartData struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DayBarChartData is one bar of the daily chart.
type DayBarChartData struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// WeekBarChartData is one bar of the weekly chart.
type WeekBarChartData struct {
	Week   string  `json:"week"`
	Amount float64 `json:"amount"`
}

func ToPieChartData(analytics []CategoryAnalytics) []PieChartData {
	result := make([]PieChartData, 0, len(analytics))
	for _, item := range analytics {
		if item.Amount <= 0 {
			continue
		}
		result = append(result, PieChartData{
			Name:  item.Category.Name,
			Value: item.Amount,
			Fill:  item.Category.ChartColor,
		})
	}
	return result
}

func ToBarChartData(analytics []CategoryAnalytics) []BarChartData {
	result := make([]BarChartData, 0, len(analytics))
	for _, item := range analytics {
		result = append(result, BarChartData{
			Category: item.Category.Name,
			Amount:   item.Amount,
			Fill:     item.Category.ChartColor,
		})
	}
	return result
}

func ToLineChartData(buckets []MonthlyBucket) []LineChartData {
	result := make([]LineChartData, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, LineChartData{Month: b.Label, Amount: b.Amount})
	}
	return result
}

func ToDayBarChartData(buckets []DailyBucket) []DayBarChartData {
	result := make([]DayBarChartData, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, DayBarChartData{Date: b.Label, Amount: b.Amount})
	}
	return result
}

func ToWeekBarChartData(buckets []WeeklyBucket) []WeekBarChartData {
	result := make([]WeekBarChartData, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, WeekBarChartData{Week: b.Label, Amount: b.Amount})
	}
	return result
}
