package dto

import (
	"net/http"

	"github.com/kdirani/farms/internal/application/action"
)

// Domain error codes surfaced by actions
const (
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeValidation    = "VALIDATION_ERROR"
	CodeConflict      = "CONFLICT"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeInvalidState  = "INVALID_STATE"
	CodeInternal      = "INTERNAL_ERROR"
)

// Attachment validation codes
const (
	CodeInvalidFileName    = "INVALID_FILE_NAME"
	CodeInvalidFileSize    = "INVALID_FILE_SIZE"
	CodeInvalidContentType = "INVALID_CONTENT_TYPE"
	CodeInvalidStorageKey  = "INVALID_STORAGE_KEY"
	CodeInvalidEmail       = "INVALID_EMAIL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	CodeNotFound: http.StatusNotFound,

	// Input errors -> 400 Bad Request
	CodeInvalidInput:       http.StatusBadRequest,
	CodeValidation:         http.StatusBadRequest,
	CodeInvalidFileName:    http.StatusBadRequest,
	CodeInvalidFileSize:    http.StatusBadRequest,
	CodeInvalidContentType: http.StatusBadRequest,
	CodeInvalidStorageKey:  http.StatusBadRequest,
	CodeInvalidEmail:       http.StatusBadRequest,

	CodeConflict:      http.StatusConflict,
	CodeAlreadyExists: http.StatusConflict,

	CodeUnauthorized: http.StatusUnauthorized,
	CodeForbidden:    http.StatusForbidden,

	// Business rule errors -> 422 Unprocessable Entity
	CodeInvalidState: http.StatusUnprocessableEntity,

	CodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes are internal errors.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// StatusOf returns the HTTP status an action result is written with
func StatusOf(res action.Result) int {
	if res.Success {
		return http.StatusOK
	}
	return GetHTTPStatus(res.Code())
}
