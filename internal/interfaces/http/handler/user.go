package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	identityapp "github.com/kdirani/farms/internal/application/identity"
	"github.com/kdirani/farms/internal/domain/shared"
)

// UserHandler handles user administration. Every route requires the admin role.
type UserHandler struct {
	BaseHandler
	profiles *identityapp.ProfileService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profiles *identityapp.ProfileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// ListUsers godoc
// @ID           listUsers
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200 {object} APIResponse[[]identityapp.ProfileResponse]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	run(c, "ListUsers", h.profiles.ListUsers)
}

// GetUser godoc
// @ID           getUser
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[identityapp.ProfileResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "GetUser", func(ctx context.Context) (*identityapp.ProfileResponse, error) {
		return h.profiles.GetUser(ctx, id)
	})
}

// CreateUser godoc
// @ID           createUser
// @Summary      Create a user profile
// @Description  Registers the profile of a user that already exists in the auth provider
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateProfileRequest true "Profile"
// @Success      200 {object} APIResponse[identityapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req identityapp.CreateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "CreateUser", func(ctx context.Context) (*identityapp.ProfileResponse, error) {
		return h.profiles.CreateProfile(ctx, req)
	})
}

// UpdateUser godoc
// @ID           updateUser
// @Summary      Update a user profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "User ID" format(uuid)
// @Param        request body identityapp.UpdateProfileRequest true "Profile"
// @Success      200 {object} APIResponse[identityapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req identityapp.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "UpdateUser", func(ctx context.Context) (*identityapp.ProfileResponse, error) {
		return h.profiles.UpdateProfile(ctx, id, req)
	})
}

// UpdateUserRole godoc
// @ID           updateUserRole
// @Summary      Change the role of a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "User ID" format(uuid)
// @Param        request body identityapp.UpdateRoleRequest true "Role"
// @Success      200 {object} APIResponse[identityapp.ProfileResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/role [patch]
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req identityapp.UpdateRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "UpdateUserRole", func(ctx context.Context) (*identityapp.ProfileResponse, error) {
		return h.profiles.UpdateUserRole(ctx, id, req)
	})
}

// DeleteUser godoc
// @ID           deleteUser
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	actorID, err := getUserID(c)
	if err != nil {
		h.Fail(c, shared.NewDomainError("UNAUTHORIZED", "authentication required"))
		return
	}
	run(c, "DeleteUser", func(ctx context.Context) (uuid.UUID, error) {
		return h.profiles.DeleteUser(ctx, actorID, id)
	})
}

// AssignFarm godoc
// @ID           assignFarm
// @Summary      Assign a farm to a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "User ID" format(uuid)
// @Param        request body identityapp.AssignFarmRequest true "Farm"
// @Success      200 {object} APIResponse[IDData]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/farm [put]
func (h *UserHandler) AssignFarm(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req identityapp.AssignFarmRequest
	if !h.BindJSON(c, &req) {
		return
	}
	run(c, "AssignFarm", func(ctx context.Context) (uuid.UUID, error) {
		return h.profiles.AssignFarm(ctx, id, req)
	})
}

// RegisterRoutes mounts the user routes on the admin group
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.POST("", h.CreateUser)
	users.PUT("/:id", h.UpdateUser)
	users.PATCH("/:id/role", h.UpdateUserRole)
	users.DELETE("/:id", h.DeleteUser)
	users.PUT("/:id/farm", h.AssignFarm)
}
