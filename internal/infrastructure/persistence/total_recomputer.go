package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTotalRecomputer maintains total_value on invoice-like records. It is
// meant to run on a transaction handle: Lock takes a row lock on the parent
// (SELECT ... FOR UPDATE; sqlite serializes writers instead) so the read of
// lines and the write of the total cannot interleave with another writer.
type GormTotalRecomputer struct {
	db *gorm.DB
}

// NewGormTotalRecomputer creates a new GormTotalRecomputer
func NewGormTotalRecomputer(db *gorm.DB) *GormTotalRecomputer {
	return &GormTotalRecomputer{db: db}
}

func totalTables(kind document.Kind) (kindTables, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return t, err
	}
	if !kind.HasTotal() {
		return t, shared.Invalid(string(kind) + " records have no total value")
	}
	return t, nil
}

// Lock locks the parent row for the rest of the transaction
func (r *GormTotalRecomputer) Lock(ctx context.Context, kind document.Kind, ownerID uuid.UUID) error {
	t, err := totalTables(kind)
	if err != nil {
		return err
	}
	var row struct{ ID uuid.UUID }
	err = r.db.WithContext(ctx).
		Table(t.parent).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", ownerID).
		Take(&row).Error
	return translateError(err, string(kind))
}

// Recompute sums item values and expense amounts and stores the result
func (r *GormTotalRecomputer) Recompute(ctx context.Context, kind document.Kind, ownerID uuid.UUID) (decimal.Decimal, error) {
	t, err := totalTables(kind)
	if err != nil {
		return decimal.Zero, err
	}
	db := r.db.WithContext(ctx)

	var values []decimal.Decimal
	if err := db.Table(t.items).Where("invoice_id = ?", ownerID).Pluck("value", &values).Error; err != nil {
		return decimal.Zero, err
	}
	var amounts []decimal.Decimal
	if err := db.Table(t.expenses).Where("invoice_id = ?", ownerID).Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}

	total := document.Total(values, amounts)
	res := db.Table(t.parent).Where("id = ?", ownerID).Updates(map[string]any{
		"total_value": total,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if res.RowsAffected == 0 {
		return decimal.Zero, shared.NotFound(string(kind))
	}
	return total, nil
}

var _ document.TotalRecomputer = (*GormTotalRecomputer)(nil)
