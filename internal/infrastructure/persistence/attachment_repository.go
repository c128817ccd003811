package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/attachment"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAttachmentRepository implements attachment.Repository and
// attachment.RecordLookup over the per-kind attachment tables.
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

func attachmentTable(kind document.Kind) (string, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return "", err
	}
	return t.attachments, nil
}

// Save inserts an attachment row
func (r *GormAttachmentRepository) Save(ctx context.Context, a *attachment.Attachment) error {
	table, err := attachmentTable(a.Kind)
	if err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Table(table).Create(models.AttachmentModelFromDomain(a)).Error, "attachment")
}

// FindByID loads an attachment row
func (r *GormAttachmentRepository) FindByID(ctx context.Context, kind document.Kind, id uuid.UUID) (*attachment.Attachment, error) {
	table, err := attachmentTable(kind)
	if err != nil {
		return nil, err
	}
	var m models.AttachmentModel
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, translateError(err, "attachment")
	}
	return m.ToDomain(kind), nil
}

// ListByRecord lists the attachments of one record, newest first
func (r *GormAttachmentRepository) ListByRecord(ctx context.Context, kind document.Kind, recordID uuid.UUID) ([]attachment.Attachment, error) {
	table, err := attachmentTable(kind)
	if err != nil {
		return nil, err
	}
	var rows []models.AttachmentModel
	if err := r.db.WithContext(ctx).Table(table).
		Where("record_id = ?", recordID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]attachment.Attachment, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain(kind)
	}
	return out, nil
}

// Delete removes an attachment row
func (r *GormAttachmentRepository) Delete(ctx context.Context, kind document.Kind, id uuid.UUID) error {
	table, err := attachmentTable(kind)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&models.AttachmentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("attachment")
	}
	return nil
}

// DeleteByRecord removes every attachment row of a record
func (r *GormAttachmentRepository) DeleteByRecord(ctx context.Context, kind document.Kind, recordID uuid.UUID) error {
	table, err := attachmentTable(kind)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Table(table).Where("record_id = ?", recordID).Delete(&models.AttachmentModel{}).Error
}

// RecordSubtype checks the parent record exists and returns its invoice
// type for invoices.
func (r *GormAttachmentRepository) RecordSubtype(ctx context.Context, kind document.Kind, recordID uuid.UUID) (string, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return "", err
	}
	q := r.db.WithContext(ctx).Table(t.parent).Where("id = ?", recordID)
	if kind == document.KindInvoice {
		var row struct{ InvoiceType string }
		if err := q.Select("invoice_type").Take(&row).Error; err != nil {
			return "", translateError(err, string(kind))
		}
		return row.InvoiceType, nil
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "", shared.NotFound(string(kind))
	}
	return "", nil
}

var (
	_ attachment.Repository   = (*GormAttachmentRepository)(nil)
	_ attachment.RecordLookup = (*GormAttachmentRepository)(nil)
)
