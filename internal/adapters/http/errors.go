package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/dto"
	"github.com/memorias-pessoais/memorias-api/internal/platform/logging"
)

// RespondWithError writes an error response to the gin.Context.
// It maps domain errors to HTTP responses and includes the trace ID if available.
func RespondWithError(c *gin.Context, err error) {
	status, errResp := dto.MapDomainError(err)
	errResp.TraceID = dto.GetTraceID(c)

	// Log internal errors with full details
	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors (e.g., unknown routes) that don't
// originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))

	c.JSON(dto.HTTPStatusFromCode(code), errResp)
}

// RespondWithValidationErrors writes a 400 response carrying per-field
// validation messages in the details map.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeValidation, "request validation failed").
		WithTraceID(dto.GetTraceID(c))
	if len(fieldErrors) > 0 {
		errResp.Error.Details = fieldErrors
	}

	c.JSON(http.StatusBadRequest, errResp)
}

// AbortWithError aborts the request chain and writes an error response.
// Use this in middleware when you want to stop further processing.
func AbortWithError(c *gin.Context, err error) {
	status, errResp := dto.MapDomainError(err)
	errResp.TraceID = dto.GetTraceID(c)

	c.AbortWithStatusJSON(status, errResp)
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))

	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}
