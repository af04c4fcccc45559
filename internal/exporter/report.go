package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"dqcli/internal/rules"
)

var violationHeaders = []string{"rule_id", "category", "field", "subject", "row", "values", "detail"}

// ViolationRecords renders a report's violations as CSV records in report
// order. Group-scoped violations render an empty row column.
func ViolationRecords(report *rules.Report) [][]string {
	records := make([][]string, 0, len(report.Violations))
	for _, v := range report.Violations {
		row := ""
		if v.Row >= 0 {
			row = strconv.Itoa(v.Row)
		}
		records = append(records, []string{
			v.RuleID,
			string(v.Category),
			v.Field,
			v.Subject,
			row,
			strings.Join(v.Values, "; "),
			v.Detail,
		})
	}
	return records
}

// WriteReportCSV writes the report's violations to a CSV file.
func WriteReportCSV(report *rules.Report, filePath string) error {
	return WriteSimpleCSV(filePath, violationHeaders, ViolationRecords(report))
}

// WriteReportJSON writes the full report as indented JSON.
func WriteReportJSON(report *rules.Report, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteReportExcel writes a workbook with a Violations sheet and a Summary
// sheet of per-rule counts.
func WriteReportExcel(report *rules.Report, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const violationsSheet = "Violations"
	f.SetSheetName(f.GetSheetName(0), violationsSheet)

	if err := writeSheetRow(f, violationsSheet, 1, violationHeaders); err != nil {
		return err
	}
	for i, record := range ViolationRecords(report) {
		if err := writeSheetRow(f, violationsSheet, i+2, record); err != nil {
			return err
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSheetRow(f, summarySheet, 1, []string{"rule_id", "violations"}); err != nil {
		return err
	}
	counts := report.CountByRule()
	ruleIDs := make([]string, 0, len(counts))
	for id := range counts {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)
	for i, id := range ruleIDs {
		row := []string{id, strconv.Itoa(counts[id])}
		if err := writeSheetRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
