package analytics

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// SummaryRenderer renders a Summary into an alternative representation.
type SummaryRenderer interface {
	RenderSummary(summary Summary) (string, error)
}

type CsvSummaryRendererImpl struct {
}

func NewCsvSummaryRenderer() *CsvSummaryRendererImpl {
	return &CsvSummaryRendererImpl{}
}

// RenderSummary renders the per-category breakdown as CSV: one row per
// category ordered by descending amount, then a total row.
func (t *CsvSummaryRendererImpl) RenderSummary(summary Summary) (string, error) {
	data := make([][]string, 0, len(summary.Breakdown)+2)
	data = append(data, []string{"Category", "Amount", "Count", "Percentage"})

	for _, item := range summary.Breakdown {
		data = append(data, []string{
			item.Category.Name,
			amountToString(item.Amount),
			strconv.Itoa(item.Count),
			FormatPercentage(item.Percentage),
		})
	}
	data = append(data, []string{"Total", amountToString(summary.Total), "", ""})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func amountToString(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
