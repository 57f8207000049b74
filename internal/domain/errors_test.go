package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "categoria",
			id:          "507f1f77bcf86cd799439011",
			expectedMsg: `categoria with id "507f1f77bcf86cd799439011" not found`,
		},
		{
			name:        "with entity only",
			entity:      "pessoa",
			id:          "",
			expectedMsg: "pessoa not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestConflictError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "without details",
			err:         NewConflictError("categoria", "categoria_id already exists"),
			expectedMsg: "categoria conflict: categoria_id already exists",
		},
		{
			name:        "with details",
			err:         NewConflictErrorWithDetails("pessoa", "cannot delete", "has associated memories"),
			expectedMsg: "pessoa conflict: cannot delete (has associated memories)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrConflict)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("nome", "must be at least 3 characters")

	assert.Equal(t, "validation failed for nome: must be at least 3 characters", err.Error())
	require.ErrorIs(t, err, ErrValidation)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "nome", validation.Field)
}

func TestValidationError_NoField(t *testing.T) {
	err := NewValidationError("", "something is off")

	assert.Equal(t, "validation failed: something is off", err.Error())
	require.ErrorIs(t, err, ErrValidation)
}

func TestValidationErrorWithValue(t *testing.T) {
	err := NewValidationErrorWithValue("limit", "must be positive", -5)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, -5, validation.Value)
}

func TestUnavailableError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "with reason",
			err:         NewUnavailableError("mongodb", "connection refused"),
			expectedMsg: `service "mongodb" unavailable: connection refused`,
		},
		{
			name:        "without reason",
			err:         NewUnavailableError("mongodb", ""),
			expectedMsg: `service "mongodb" unavailable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrUnavailable)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{"not found matches", NewNotFoundError("memoria", "1"), IsNotFound, true},
		{"conflict matches", NewConflictError("grupo", "duplicate nome"), IsConflict, true},
		{"validation matches", NewValidationError("data", "is required"), IsValidation, true},
		{"unavailable matches", NewUnavailableError("mongodb", "down"), IsUnavailable, true},
		{"not found does not match conflict", NewNotFoundError("memoria", "1"), IsConflict, false},
		{"wrapped not found matches", fmt.Errorf("getting: %w", NewNotFoundError("memoria", "1")), IsNotFound, true},
		{"nil does not match", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.predicate(tt.err))
		})
	}
}
