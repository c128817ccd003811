// Package identity models user profiles. Accounts and sessions belong to
// the external auth provider; a profile only records role and display data.
package identity

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
)

// Role is the application role of a user
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "sub_admin"
	RoleFarmer   Role = "farmer"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSubAdmin, RoleFarmer:
		return true
	default:
		return false
	}
}

// Profile is the application-side record of an auth user
type Profile struct {
	ID        uuid.UUID
	Email     string
	FName     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile registers a profile for an existing auth user id
func NewProfile(id uuid.UUID, email, fname string, role Role) (*Profile, error) {
	if id == uuid.Nil {
		return nil, shared.Invalid("user id is required")
	}
	p := &Profile{ID: id, CreatedAt: time.Now()}
	if err := p.Update(email, fname); err != nil {
		return nil, err
	}
	if err := p.SetRole(role); err != nil {
		return nil, err
	}
	return p, nil
}

// Update changes email and display name
func (p *Profile) Update(email, fname string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return shared.Invalid("email is not valid")
	}
	name, err := shared.RequireName("name", fname, 200)
	if err != nil {
		return err
	}
	p.Email = strings.ToLower(addr.Address)
	p.FName = name
	p.UpdatedAt = time.Now()
	return nil
}

// SetRole changes the role
func (p *Profile) SetRole(role Role) error {
	if !role.IsValid() {
		return shared.Invalid("role must be admin, sub_admin or farmer")
	}
	p.Role = role
	p.UpdatedAt = time.Now()
	return nil
}

// Repository persists profiles
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)
	EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	Save(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
