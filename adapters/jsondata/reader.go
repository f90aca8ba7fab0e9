package jsondata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"fielddist/domain/distribution"
	"fielddist/internal/errors"
)

// Reader extracts field values from a JSON file holding a top-level
// array of records. Elements that are not objects, and objects without
// the requested key, contribute the null bucket rather than failing.
type Reader struct {
	filePath string
}

// NewReader creates a reader for a JSON list-of-records file.
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// Name returns the file stem, used for derived output filenames.
func (r *Reader) Name() string {
	base := filepath.Base(r.filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FieldValues decodes the file and returns the canonical value of field
// for every record, in list order. Fails with MALFORMED_SOURCE when the
// top-level value is not an array.
func (r *Reader) FieldValues(ctx context.Context, field string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(err, "failed to decode JSON file %s", r.filePath)
	}

	records, ok := root.([]interface{})
	if !ok {
		return nil, errors.MalformedSource(r.filePath,
			fmt.Sprintf("expected a list of records, got %T", root))
	}

	values := make([]string, 0, len(records))
	for _, rec := range records {
		obj, ok := rec.(map[string]interface{})
		if !ok {
			values = append(values, distribution.NullValue)
			continue
		}
		v, ok := obj[field]
		if !ok {
			values = append(values, distribution.NullValue)
			continue
		}
		values = append(values, distribution.Canonicalize(v))
	}

	log.Debug().
		Str("component", "jsondata").
		Str("source", r.filePath).
		Str("field", field).
		Int("records", len(values)).
		Msg("field values extracted")

	return values, nil
}
