package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "malformed input error type", errType: ErrTypeMalformedInput, expected: "MALFORMED_INPUT"},
		{name: "empty result error type", errType: ErrTypeEmptyResult, expected: "EMPTY_RESULT"},
		{name: "missing column error type", errType: ErrTypeMissingColumn, expected: "MISSING_COLUMN"},
		{name: "no qualifying data error type", errType: ErrTypeNoQualifyingData, expected: "NO_QUALIFYING_DATA"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeNotFound,
				Message: "country Nowhereland not found",
			},
			wantMessage: "[NOT_FOUND] country Nowhereland not found",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeMalformedInput,
				Message: "failed to decode observations",
				Cause:   fmt.Errorf("unexpected end of JSON input"),
			},
			wantMessage: "[MALFORMED_INPUT] failed to decode observations: unexpected end of JSON input",
		},
		{
			name: "error with empty message",
			appError: &AppError{
				Type: ErrTypeEmptyResult,
			},
			wantMessage: "[EMPTY_RESULT] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("failed to write report", cause)

	assert.Same(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, NewEmptyResultError("nothing left").Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeMissingColumn, Message: "missing"}

	got := err.WithContext("column", "2014").WithContext("table", "census")

	require.Same(t, err, got)
	assert.Equal(t, "2014", got.Context["column"])
	assert.Equal(t, "census", got.Context["table"])
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      NewNotFoundError("country Nowhereland"),
			wantType: ErrTypeNotFound,
			wantMsg:  "country Nowhereland not found",
		},
		{
			name:     "missing column",
			err:      NewMissingColumnError("2014"),
			wantType: ErrTypeMissingColumn,
			wantMsg:  `column "2014" is missing`,
		},
		{
			name:     "no qualifying data",
			err:      NewNoQualifyingDataError("value"),
			wantType: ErrTypeNoQualifyingData,
			wantMsg:  `no records with "value" found`,
		},
		{
			name:     "empty result",
			err:      NewEmptyResultError("no rows for years [2010 2014]"),
			wantType: ErrTypeEmptyResult,
			wantMsg:  "no rows for years [2010 2014]",
		},
		{
			name:     "config",
			err:      NewConfigError("invalid start year", nil),
			wantType: ErrTypeConfig,
			wantMsg:  "invalid start year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.NotNil(t, tt.err.Context)
		})
	}
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("census: %w", NewMissingColumnError("2010"))

	assert.Equal(t, ErrTypeMissingColumn, TypeOf(wrapped))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestIsType(t *testing.T) {
	inner := NewNotFoundError("file global_population.csv")
	outer := NewMalformedInputError("could not load table", inner)

	assert.True(t, IsType(outer, ErrTypeMalformedInput))
	assert.True(t, IsType(outer, ErrTypeNotFound))
	assert.True(t, IsType(fmt.Errorf("wrapped: %w", outer), ErrTypeNotFound))
	assert.False(t, IsType(outer, ErrTypeStorage))
	assert.False(t, IsType(errors.New("plain"), ErrTypeNotFound))
	assert.False(t, IsType(nil, ErrTypeNotFound))
}
