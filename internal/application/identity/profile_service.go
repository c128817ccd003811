package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/farm"
	"github.com/kdirani/farms/internal/domain/identity"
	"github.com/kdirani/farms/internal/domain/shared"
)

// Cached page prefixes
const (
	PageUsers = "/admin/users"
	PageFarms = "/farms"
)

// ProfileService administers user profiles. Callers are expected to have
// passed the admin guard.
type ProfileService struct {
	profiles identity.Repository
	farms    farm.FarmRepository
	pages    action.Invalidator
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles identity.Repository, farms farm.FarmRepository, pages action.Invalidator) *ProfileService {
	return &ProfileService{profiles: profiles, farms: farms, pages: pages}
}

func (s *ProfileService) requireUniqueEmail(ctx context.Context, email string, exclude *uuid.UUID) error {
	exists, err := s.profiles.EmailExists(ctx, email, exclude)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("CONFLICT", "email "+email+" is already registered")
	}
	return nil
}

// requireOtherAdmin fails when p is the last admin
func (s *ProfileService) requireOtherAdmin(ctx context.Context, p *identity.Profile) error {
	if p.Role != identity.RoleAdmin {
		return nil
	}
	admins, err := s.profiles.CountByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return shared.NewDomainError("INVALID_STATE", "the last admin cannot be removed or demoted")
	}
	return nil
}

// ListUsers returns all profiles
func (s *ProfileService) ListUsers(ctx context.Context) ([]ProfileResponse, error) {
	rows, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProfileResponse, len(rows))
	for i := range rows {
		out[i] = ToProfileResponse(&rows[i])
	}
	return out, nil
}

// GetUser returns one profile
func (s *ProfileService) GetUser(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProfileResponse(p)
	return &resp, nil
}

// CreateProfile registers the profile row of an external auth user
func (s *ProfileService) CreateProfile(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	p, err := identity.NewProfile(req.UserID, req.Email, req.FName, identity.Role(req.UserRole))
	if err != nil {
		return nil, err
	}
	if err := s.requireUniqueEmail(ctx, p.Email, nil); err != nil {
		return nil, err
	}
	if _, err := s.profiles.FindByID(ctx, p.ID); err == nil {
		return nil, shared.NewDomainError("CONFLICT", "a profile already exists for this user")
	} else if shared.ErrorCode(err) != "NOT_FOUND" {
		return nil, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}

	action.Invalidate(ctx, s.pages, PageUsers)
	resp := ToProfileResponse(p)
	return &resp, nil
}

// UpdateProfile changes email and display name
func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.Email, req.FName); err != nil {
		return nil, err
	}
	if err := s.requireUniqueEmail(ctx, p.Email, &p.ID); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}

	action.Invalidate(ctx, s.pages, PageUsers)
	resp := ToProfileResponse(p)
	return &resp, nil
}

// UpdateUserRole changes the role of a user. The last admin keeps the
// admin role.
func (s *ProfileService) UpdateUserRole(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*ProfileResponse, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role := identity.Role(req.UserRole)
	if role != identity.RoleAdmin {
		if err := s.requireOtherAdmin(ctx, p); err != nil {
			return nil, err
		}
	}
	if err := p.SetRole(role); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}

	action.Invalidate(ctx, s.pages, PageUsers)
	resp := ToProfileResponse(p)
	return &resp, nil
}

// DeleteUser removes a profile. Admins cannot delete themselves and the
// last admin cannot be deleted.
func (s *ProfileService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) (uuid.UUID, error) {
	if actorID == id {
		return uuid.Nil, shared.NewDomainError("FORBIDDEN", "you cannot delete your own account")
	}
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.requireOtherAdmin(ctx, p); err != nil {
		return uuid.Nil, err
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}

	action.Invalidate(ctx, s.pages, PageUsers, PageFarms)
	return id, nil
}

// AssignFarm makes userID the owner of a farm
func (s *ProfileService) AssignFarm(ctx context.Context, userID uuid.UUID, req AssignFarmRequest) (uuid.UUID, error) {
	if _, err := s.profiles.FindByID(ctx, userID); err != nil {
		return uuid.Nil, err
	}
	f, err := s.farms.FindByID(ctx, req.FarmID)
	if err != nil {
		return uuid.Nil, err
	}
	f.AssignUser(&userID)
	if err := s.farms.Save(ctx, f); err != nil {
		return uuid.Nil, err
	}

	action.Invalidate(ctx, s.pages, PageUsers, PageFarms)
	return f.ID, nil
}

// RoleOf returns the stored role of a user. The profile row is the source
// of truth; the token claim can be stale after a role change.
func (s *ProfileService) RoleOf(ctx context.Context, userID uuid.UUID) (string, error) {
	p, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return string(p.Role), nil
}
