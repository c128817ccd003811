package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/identity"
)

// ProfileModel is the profiles table. Its ID is the auth provider's user id.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"size:320;not null;uniqueIndex"`
	FName     string    `gorm:"column:fname;size:200;not null"`
	UserRole  string    `gorm:"size:20;not null;default:farmer;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name
func (ProfileModel) TableName() string { return "profiles" }

// ToDomain converts the row to a domain profile
func (m *ProfileModel) ToDomain() *identity.Profile {
	return &identity.Profile{
		ID:        m.ID,
		Email:     m.Email,
		FName:     m.FName,
		Role:      identity.Role(m.UserRole),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProfileModelFromDomain converts a domain profile to a row
func ProfileModelFromDomain(p *identity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:        p.ID,
		Email:     p.Email,
		FName:     p.FName,
		UserRole:  string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
