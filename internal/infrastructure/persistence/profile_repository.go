package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/identity"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProfileRepository implements identity.Repository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a profile by the auth user id
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Profile, error) {
	var m models.ProfileModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return m.ToDomain(), nil
}

// FindAll lists profiles by display name
func (r *GormProfileRepository) FindAll(ctx context.Context) ([]identity.Profile, error) {
	var rows []models.ProfileModel
	if err := r.db.WithContext(ctx).Order("fname ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]identity.Profile, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// EmailExists checks email uniqueness, ignoring excludeID
func (r *GormProfileRepository) EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Where("email = ?", strings.ToLower(email))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

// CountByRole counts profiles holding role
func (r *GormProfileRepository) CountByRole(ctx context.Context, role identity.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProfileModel{}).Where("user_role = ?", string(role)).Count(&count).Error
	return count, err
}

// Save inserts or updates a profile
func (r *GormProfileRepository) Save(ctx context.Context, p *identity.Profile) error {
	return translateError(r.db.WithContext(ctx).Save(models.ProfileModelFromDomain(p)).Error, "user")
}

// Delete removes a profile
func (r *GormProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.ProfileModel{}, id, "user")
}

var _ identity.Repository = (*GormProfileRepository)(nil)
