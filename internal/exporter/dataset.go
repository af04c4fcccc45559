package exporter

import (
	"dqcli/internal/analytics"
	"dqcli/internal/dataset"

	"strconv"
)

// WriteDatasetCSV writes a dataset (typically a cleaning result) back to a
// CSV file. Missing values render as empty cells.
func WriteDatasetCSV(d *dataset.Dataset, filePath string) error {
	records := make([][]string, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		row := d.Row(i)
		record := make([]string, len(row))
		for j, v := range row {
			if v.IsMissing() {
				record[j] = ""
				continue
			}
			record[j] = v.Canonical()
		}
		records = append(records, record)
	}
	return WriteSimpleCSV(filePath, d.Fields(), records)
}

// WriteSummariesCSV writes per-field profile summaries to a CSV file.
func WriteSummariesCSV(summaries []analytics.FieldSummary, filePath string) error {
	headers := []string{"field", "count", "missing", "distinct", "numeric", "mean", "median", "std_dev", "min", "max"}
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		record := []string{
			s.Field,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Missing),
			strconv.Itoa(s.Distinct),
			strconv.FormatBool(s.Numeric),
			"", "", "", "", "",
		}
		if s.Numeric {
			record[5] = formatFloat(s.Mean)
			record[6] = formatFloat(s.Median)
			record[7] = formatFloat(s.StdDev)
			record[8] = formatFloat(s.Min)
			record[9] = formatFloat(s.Max)
		}
		records = append(records, record)
	}
	return WriteSimpleCSV(filePath, headers, records)
}

// WriteCorrelationsCSV writes a correlation matrix to a CSV file with field
// names on both axes.
func WriteCorrelationsCSV(m *analytics.CorrelationMatrix, filePath string) error {
	headers := append([]string{"field"}, m.Fields...)
	records := make([][]string, 0, len(m.Fields))
	for i, field := range m.Fields {
		record := make([]string, 0, len(m.Fields)+1)
		record = append(record, field)
		for _, v := range m.Values[i] {
			record = append(record, formatFloat(v))
		}
		records = append(records, record)
	}
	return WriteSimpleCSV(filePath, headers, records)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
