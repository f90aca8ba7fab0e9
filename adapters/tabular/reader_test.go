package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fielddist/internal/errors"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReader_FieldValues_CSV(t *testing.T) {
	path := writeTempCSV(t, "split_test.csv",
		"id,species_name\n1,cat\n2,dog\n3,cat\n4,bird\n")

	values, err := NewReader(path).FieldValues(context.Background(), "species_name")

	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "cat", "bird"}, values)
}

func TestReader_FieldValues_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "data.csv", "id,species_name\n1,cat\n")

	_, err := NewReader(path).FieldValues(context.Background(), "genus")

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeFieldNotFound))
	assert.Contains(t, err.Error(), "genus")
	assert.Contains(t, err.Error(), path)
}

func TestReader_FieldValues_EmptyCellsAreNull(t *testing.T) {
	path := writeTempCSV(t, "data.csv", "id,species_name\n1,cat\n2,\n3\n")

	values, err := NewReader(path).FieldValues(context.Background(), "species_name")

	require.NoError(t, err)
	// row 2 has an empty cell, row 3 is short — both land in the null bucket
	assert.Equal(t, []string{"cat", "null", "null"}, values)
}

func TestReader_FieldValues_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "data.csv", "id,species_name\n")

	values, err := NewReader(path).FieldValues(context.Background(), "species_name")

	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestReader_FieldValues_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).FieldValues(context.Background(), "x")

	assert.Error(t, err)
}

func TestReader_FieldValues_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "species_name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, "cat"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{2, "dog"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{3, "cat"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	values, err := NewReader(path).FieldValues(context.Background(), "species_name")

	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "cat"}, values)
}

func TestReader_Name(t *testing.T) {
	assert.Equal(t, "split_test", NewReader("data/split_test.csv").Name())
	assert.Equal(t, "metadata", NewReader("/tmp/metadata.xlsx").Name())
}
