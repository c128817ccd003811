package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/interfaces/http/dto"
	"github.com/kdirani/farms/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// run executes fn as a named action and writes its result
func run[T any](c *gin.Context, name string, fn func(ctx context.Context) (T, error)) {
	res := action.Run(c.Request.Context(), name, fn)
	c.JSON(dto.StatusOf(res), res)
}

// Respond writes a result with the status derived from its error code
func (h *BaseHandler) Respond(c *gin.Context, res action.Result) {
	c.JSON(dto.StatusOf(res), res)
}

// Fail writes err as a failed result
func (h *BaseHandler) Fail(c *gin.Context, err error) {
	h.Respond(c, action.Fail(err))
}

// BindJSON binds and validates the request body. On failure the response
// is written and false is returned.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.Fail(c, shared.Invalid(middleware.ValidationMessage(err)))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters
func (h *BaseHandler) BindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.Fail(c, shared.Invalid(middleware.ValidationMessage(err)))
		return false
	}
	return true
}

// PathID parses a UUID path parameter
func (h *BaseHandler) PathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Fail(c, shared.Invalid(name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// QueryID parses an optional UUID query parameter
func (h *BaseHandler) QueryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.Fail(c, shared.Invalid(name+" must be a valid UUID"))
		return nil, false
	}
	return &id, true
}

// getUserID extracts the authenticated user ID from JWT claims
func getUserID(c *gin.Context) (uuid.UUID, error) {
	raw := middleware.GetJWTUserID(c)
	if raw == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(raw)
}
