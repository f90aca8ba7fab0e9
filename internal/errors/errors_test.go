package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, "reading source")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "reading source: boom", err.Error())
	assert.Equal(t, CodeInternalError, GetCode(err))
}

func TestHasCode_ThroughWrapping(t *testing.T) {
	err := FieldNotFound("species_name", "data/split_test.csv")
	wrapped := fmt.Errorf("aggregation failed: %w", err)

	assert.True(t, HasCode(wrapped, CodeFieldNotFound))
	assert.False(t, HasCode(wrapped, CodeMalformedSource))
	assert.Equal(t, CodeFieldNotFound, GetCode(wrapped))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"field not found", FieldNotFound("k", "s.json"), CodeFieldNotFound},
		{"malformed source", MalformedSource("s.json", "not a list"), CodeMalformedSource},
		{"missing column", MissingRequiredColumn("count", "sum.csv"), CodeMissingRequiredColumn},
		{"config invalid", ConfigInvalid("field is required"), CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}
