package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"fielddist/domain/distribution"
	"fielddist/internal/errors"
)

const (
	countColumn   = "count"
	percentColumn = "percent"
)

// writeSummaryCSV persists a summary as a three-column table:
// [<field>, count, percent], percent formatted to three decimals.
func writeSummaryCSV(path string, summary distribution.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{summary.Field, countColumn, percentColumn}); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, e := range summary.Entries {
		row := []string{
			e.Value,
			strconv.Itoa(e.Count),
			strconv.FormatFloat(e.Percent, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// readSummaryCSV loads a summary table back. valueColumn may be empty,
// defaulting to the first column. Fails with MISSING_REQUIRED_COLUMN
// when the table lacks the value column or the count column.
func readSummaryCSV(path, valueColumn string) (distribution.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return distribution.Summary{}, fmt.Errorf("failed to open summary file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return distribution.Summary{}, errors.Wrapf(err, "failed to read summary file %s", path)
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return distribution.Summary{}, errors.MalformedSource(path, "summary must have at least two columns")
	}

	header := rows[0]
	if valueColumn == "" {
		valueColumn = header[0]
	}

	valueIdx, countIdx := -1, -1
	for i, h := range header {
		switch h {
		case valueColumn:
			valueIdx = i
		case countColumn:
			countIdx = i
		}
	}
	if valueIdx < 0 {
		return distribution.Summary{}, errors.MissingRequiredColumn(valueColumn, path)
	}
	if countIdx < 0 {
		return distribution.Summary{}, errors.MissingRequiredColumn(countColumn, path)
	}

	entries := make([]distribution.Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if valueIdx >= len(row) || countIdx >= len(row) {
			return distribution.Summary{}, errors.MalformedSource(path, "summary row is shorter than its header")
		}
		count, err := strconv.Atoi(row[countIdx])
		if err != nil || count < 0 {
			return distribution.Summary{}, errors.MalformedSource(path,
				fmt.Sprintf("invalid count %q for value %q", row[countIdx], row[valueIdx]))
		}
		entries = append(entries, distribution.Entry{Value: row[valueIdx], Count: count})
	}

	return distribution.FromCounts(valueColumn, entries), nil
}
