package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/podcast-sync/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || value == 0 {
		SendError(c, apperrors.InvalidInput(paramName, "must be a positive integer"))
		return 0, false
	}
	return uint(value), true
}

// QueryInt reads an integer query parameter, falling back to def when it
// is missing, malformed or outside [lo, hi]
func QueryInt(c *gin.Context, name string, def, lo, hi int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || value < lo || value > hi {
		return def
	}
	return value
}

// NewErrorResponse renders an AppError as a response body
func NewErrorResponse(err *apperrors.AppError) ErrorResponse {
	resp := ErrorResponse{
		Status:  StatusError,
		Message: err.Message,
		Error:   string(err.Code),
	}
	if len(err.Details) > 0 {
		resp.Details = err.Details
	}
	return resp
}

// SendError sends err with the status its code maps to
func SendError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.GetHTTPCode(), NewErrorResponse(err))
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeInvalidInput, message))
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeNotFound, message))
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeInternal, message))
}

// SendConflict sends a standardized conflict response
func SendConflict(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeConflict, message))
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendAccepted sends a standardized accepted response with data
func SendAccepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, data)
}
