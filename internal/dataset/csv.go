package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LoadOptions controls how raw cells are interpreted while loading.
type LoadOptions struct {
	// MissingTokens are cell contents treated as the missing value after
	// trimming. The delivery dataset uses literal "NaN " strings.
	MissingTokens []string
	// TrimSpace trims surrounding whitespace from every cell before parsing.
	TrimSpace bool
	// Comma is the CSV field delimiter.
	Comma rune
}

// DefaultLoadOptions returns the options used for the delivery dataset.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MissingTokens: []string{"", "NaN", "nan", "NaN ", "null", "NULL"},
		TrimSpace:     true,
		Comma:         ',',
	}
}

// LoadCSV reads a CSV file with a header row into a dataset.
func LoadCSV(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	d, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Info("Loaded CSV dataset",
		slog.String("path", path),
		slog.Int("rows", d.Len()),
		slog.Int("fields", len(d.Fields())))
	return d, nil
}

// ReadCSV reads CSV content with a header row into a dataset. A UTF-8 BOM,
// if present, is stripped before parsing so Excel-produced files load
// cleanly.
func ReadCSV(r io.Reader, opts LoadOptions) (*Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv content: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv content is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	d, err := New(header)
	if err != nil {
		return nil, err
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record at line %d: %w", line+1, err)
		}
		line++

		row := make([]Value, len(header))
		for i := range header {
			if i < len(record) {
				row[i] = ParseCell(record[i], opts)
			} else {
				row[i] = Missing()
			}
		}
		if err := d.Append(row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return d, nil
}

// ParseCell interprets one raw cell. Cells matching a missing token become
// the missing value; otherwise integers are tried first, then floats, and
// anything else stays a string. Dates and times are kept as strings and
// parsed by the rules that need them.
func ParseCell(raw string, opts LoadOptions) Value {
	cell := raw
	if opts.TrimSpace {
		cell = strings.TrimSpace(cell)
	}
	for _, tok := range opts.MissingTokens {
		if cell == strings.TrimSpace(tok) {
			return Missing()
		}
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return Float(f)
	}
	return String(cell)
}
