package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidFileSize, http.StatusBadRequest},
		{CodeInvalidContentType, http.StatusBadRequest},
		{CodeConflict, http.StatusConflict},
		{CodeForbidden, http.StatusForbidden},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidState, http.StatusUnprocessableEntity},
		{CodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, StatusOf(action.Ok("x")))
	})

	t.Run("domain error keeps its status", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, StatusOf(action.Fail(shared.NotFound("invoice"))))
		assert.Equal(t, http.StatusConflict, StatusOf(action.Fail(shared.NewDomainError(CodeConflict, "dup"))))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		res := action.Fail(errors.New("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, StatusOf(res))
		assert.Equal(t, "an unexpected error occurred", res.Error)
	})
}
