package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"fielddist/domain/distribution"
	"fielddist/internal/errors"
)

// defaultSheet is the worksheet read from Excel workbooks.
const defaultSheet = "Sheet1"

// Reader extracts field values from tabular files with a header row.
// Both .csv and .xlsx inputs are handled behind the same ValueSource
// shape; the file extension picks the decoder.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for a CSV or Excel file.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Name returns the file stem, used for derived output filenames.
func (r *Reader) Name() string {
	base := filepath.Base(r.filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FieldValues reads the table and returns the canonical value of field
// for every data row, in row order. An empty cell contributes the null
// bucket. Fails with FIELD_NOT_FOUND when the header lacks the field.
func (r *Reader) FieldValues(ctx context.Context, field string) ([]string, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.MalformedSource(r.filePath, "missing header row")
	}

	header := rows[0]
	fieldIdx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == field {
			fieldIdx = i
			break
		}
	}
	if fieldIdx < 0 {
		return nil, errors.FieldNotFound(field, r.filePath)
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if fieldIdx >= len(row) {
			// short row: the cell simply isn't there
			values = append(values, distribution.NullValue)
			continue
		}
		values = append(values, distribution.Canonicalize(strings.TrimSpace(row[fieldIdx])))
	}

	log.Debug().
		Str("component", "tabular").
		Str("source", r.filePath).
		Str("field", field).
		Int("rows", len(values)).
		Msg("field values extracted")

	return values, nil
}

func (r *Reader) readRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcelRows()
	default:
		return r.readCSVRows()
	}
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(defaultSheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", defaultSheet)
	}
	return rows, nil
}
