package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestNewErrorResponse tests creating a basic error response.
func TestNewErrorResponse(t *testing.T) {
	got := NewErrorResponse(ErrorCodeNotFound, "resource not found")

	assert.Equal(t, &ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrorCodeNotFound,
			Message: "resource not found",
		},
	}, got)
}

// TestNewErrorResponseWithDetails tests creating an error response with details.
func TestNewErrorResponseWithDetails(t *testing.T) {
	details := map[string]string{
		"nome": "must be at least 3 characters",
		"data": "must be a date in YYYY-MM-DD format",
	}

	got := NewErrorResponseWithDetails(ErrorCodeValidation, "validation failed", details)

	assert.Equal(t, ErrorCodeValidation, got.Error.Code)
	assert.Equal(t, details, got.Error.Details)
}

// TestWithTraceID tests adding trace ID to error response.
func TestWithTraceID(t *testing.T) {
	got := NewErrorResponse(ErrorCodeInternal, "boom").WithTraceID("abc123")

	assert.Equal(t, "abc123", got.TraceID)
}

// TestHTTPStatusFromCode tests mapping error codes to HTTP statuses.
func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

// TestMapDomainError tests mapping domain errors to HTTP responses.
func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("categoria", "1"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError("pessoa", "already exists"),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("nome", "must not be empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("mongodb", "timeout"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown error is masked",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

// TestMapDomainError_ValidationDetails tests field extraction from validation errors.
func TestMapDomainError_ValidationDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("titulo", "must not be empty"))

	require.NotNil(t, resp.Error.Details)
	assert.Equal(t, "must not be empty", resp.Error.Details["titulo"])
}

// TestGetTraceID tests extracting trace ID from gin context.
func TestGetTraceID_NoSpan(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, GetTraceID(c))
}

// TestPaginationRequest tests limit defaults and clamping.
func TestPaginationRequest(t *testing.T) {
	tests := []struct {
		name string
		req  PaginationRequest
		want ports.Page
	}{
		{
			name: "defaults",
			req:  PaginationRequest{},
			want: ports.Page{Limit: DefaultLimit},
		},
		{
			name: "explicit values",
			req:  PaginationRequest{Limit: 25, Skip: 50},
			want: ports.Page{Limit: 25, Skip: 50},
		},
		{
			name: "limit clamped to max",
			req:  PaginationRequest{Limit: 500},
			want: ports.Page{Limit: MaxLimit},
		},
		{
			name: "negative skip reset",
			req:  PaginationRequest{Limit: 10, Skip: -1},
			want: ports.Page{Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.ToPage())
		})
	}
}

// TestNewListResponse tests list wrapping.
func TestNewListResponse(t *testing.T) {
	t.Run("nil becomes empty array", func(t *testing.T) {
		resp := NewListResponse[string](nil)

		assert.NotNil(t, resp.Items)
		assert.Zero(t, resp.Count)
	})

	t.Run("counts items", func(t *testing.T) {
		resp := NewListResponse([]int{1, 2, 3})

		assert.Equal(t, 3, resp.Count)
	})
}

// TestValidate tests the custom validators.
func TestValidate(t *testing.T) {
	type payload struct {
		ID   string `json:"id" validate:"omitempty,objectid"`
		Data string `json:"data" validate:"omitempty,dateonly"`
		Nome string `json:"nome" validate:"required,notempty"`
	}

	tests := []struct {
		name    string
		in      payload
		wantErr bool
		field   string
	}{
		{
			name: "valid",
			in:   payload{ID: "665f1f77bcf86cd799439011", Data: "2023-07-15", Nome: "Viagens"},
		},
		{
			name:    "malformed object id",
			in:      payload{ID: "xyz", Nome: "Viagens"},
			wantErr: true,
			field:   "id",
		},
		{
			name:    "malformed date",
			in:      payload{Data: "15/07/2023", Nome: "Viagens"},
			wantErr: true,
			field:   "data",
		},
		{
			name:    "blank name",
			in:      payload{Nome: "   "},
			wantErr: true,
			field:   "nome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, ValidationErrors(err), tt.field)
		})
	}
}
