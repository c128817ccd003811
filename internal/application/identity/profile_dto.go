package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/identity"
)

// CreateProfileRequest registers a profile for a user created in the
// external auth provider
type CreateProfileRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Email    string    `json:"email" binding:"required,email,max=254"`
	FName    string    `json:"fname" binding:"required,max=200"`
	UserRole string    `json:"user_role" binding:"required,oneof=admin sub_admin farmer"`
}

// UpdateProfileRequest changes email and display name
type UpdateProfileRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
	FName string `json:"fname" binding:"required,max=200"`
}

// UpdateRoleRequest changes the role of a user
type UpdateRoleRequest struct {
	UserRole string `json:"user_role" binding:"required,oneof=admin sub_admin farmer"`
}

// AssignFarmRequest links a farm to a user
type AssignFarmRequest struct {
	FarmID uuid.UUID `json:"farm_id" binding:"required"`
}

// ProfileResponse is a user profile in API responses
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FName     string    `json:"fname"`
	UserRole  string    `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProfileResponse converts a domain profile
func ToProfileResponse(p *identity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FName:     p.FName,
		UserRole:  string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}
