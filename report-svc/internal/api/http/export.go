package httpapi

import (
	"encoding/csv"
	"io"
	"strconv"

	"tableside/report-svc/internal/domain"
)

// WriteCSV renders the report as blank-line separated sections: summary,
// popular items, hourly stats and ratings.
func WriteCSV(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"metric", "value"},
		{"period", string(report.Period)},
		{"from", report.From},
		{"to", report.To},
		{"revenue", report.Revenue.StringFixed(2)},
		{"orders", strconv.Itoa(report.Orders)},
		{"avg_order_value", report.AvgOrderValue.StringFixed(2)},
		nil,
		{"item", "quantity", "revenue"},
	}
	for _, item := range report.PopularItems {
		records = append(records, []string{item.Name, strconv.Itoa(item.Quantity), item.Revenue.StringFixed(2)})
	}

	records = append(records, nil, []string{"hour", "orders", "revenue"})
	for _, stat := range report.HourlyStats {
		records = append(records, []string{strconv.Itoa(stat.Hour), strconv.Itoa(stat.Orders), stat.Revenue.StringFixed(2)})
	}

	records = append(records, nil, []string{"rating", "count"})
	for rating := 1; rating <= 5; rating++ {
		key := strconv.Itoa(rating)
		records = append(records, []string{key, strconv.Itoa(report.RatingDistribution[key])})
	}

	return cw.WriteAll(records)
}
