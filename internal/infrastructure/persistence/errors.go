package persistence

import (
	"errors"

	"github.com/kdirani/farms/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps driver errors onto domain errors
func translateError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NotFound(resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.WrapDomainError("CONFLICT", resource+" already exists", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.WrapDomainError("CONFLICT", resource+" is referenced by other records", err)
	default:
		return err
	}
}

// deleteByID deletes one row and reports NOT_FOUND when nothing matched
func deleteByID(db *gorm.DB, model any, id any, resource string) error {
	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error, resource)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound(resource)
	}
	return nil
}
