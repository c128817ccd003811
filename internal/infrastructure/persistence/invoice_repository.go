package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoice.Repository using GORM
type GormInvoiceRepository struct {
	db       *gorm.DB
	expenses *GormExpenseRepository
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db, expenses: NewGormExpenseRepository(db)}
}

// Create inserts the header, its items and its expenses. Run it inside a
// transaction scope to make the three inserts atomic.
func (r *GormInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(models.InvoiceModelFromDomain(inv)).Error; err != nil {
		return translateError(err, "invoice")
	}
	if len(inv.Items) > 0 {
		rows := make([]*models.InvoiceItemModel, len(inv.Items))
		for i := range inv.Items {
			rows[i] = models.InvoiceItemModelFromDomain(&inv.Items[i])
		}
		if err := db.Create(rows).Error; err != nil {
			return translateError(err, "invoice item")
		}
	}
	for i := range inv.Expenses {
		if err := r.expenses.Add(ctx, document.KindInvoice, &inv.Expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

// FindByID loads an invoice with its items and expenses
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var m models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "invoice")
	}
	inv := m.ToDomain()
	if err := r.loadLines(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *GormInvoiceRepository) loadLines(ctx context.Context, inv *invoice.Invoice) error {
	var items []models.InvoiceItemModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", inv.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return err
	}
	inv.Items = make([]invoice.Item, len(items))
	for i := range items {
		inv.Items[i] = *items[i].ToDomain()
	}
	expenses, err := r.expenses.ListByOwner(ctx, document.KindInvoice, inv.ID)
	if err != nil {
		return err
	}
	inv.Expenses = expenses
	return nil
}

// FindEnriched loads an invoice joined with its warehouse, farm and
// poultry batch names.
func (r *GormInvoiceRepository) FindEnriched(ctx context.Context, id uuid.UUID) (*invoice.Enriched, error) {
	var row models.EnrichedInvoiceRow
	res := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("invoices.*, warehouses.name AS warehouse_name, farms.name AS farm_name, poultry_status.batch_name AS poultry_batch_name").
		Joins("LEFT JOIN warehouses ON warehouses.id = invoices.warehouse_id").
		Joins("LEFT JOIN farms ON farms.id = warehouses.farm_id").
		Joins("LEFT JOIN poultry_status ON poultry_status.id = invoices.poultry_status_id").
		Where("invoices.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, shared.NotFound("invoice")
	}

	out := &invoice.Enriched{Invoice: *row.InvoiceModel.ToDomain()}
	if err := r.loadLines(ctx, &out.Invoice); err != nil {
		return nil, err
	}
	out.WarehouseName = deref(row.WarehouseName)
	out.FarmName = deref(row.FarmName)
	out.PoultryBatchName = deref(row.PoultryBatchName)
	return out, nil
}

// FindAll lists invoice summaries, newest first
func (r *GormInvoiceRepository) FindAll(ctx context.Context, f invoice.Filter) ([]invoice.Summary, error) {
	q := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("invoices.id, invoices.invoice_type, invoices.invoice_number, invoices.invoice_date, invoices.warehouse_id, invoices.total_value, invoices.checked, warehouses.name AS warehouse_name").
		Joins("LEFT JOIN warehouses ON warehouses.id = invoices.warehouse_id")
	if f.Type != nil {
		q = q.Where("invoices.invoice_type = ?", string(*f.Type))
	}
	if f.WarehouseID != nil {
		q = q.Where("invoices.warehouse_id = ?", *f.WarehouseID)
	}
	if f.From != nil {
		q = q.Where("invoices.invoice_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("invoices.invoice_date <= ?", *f.To)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []struct {
		models.InvoiceModel
		WarehouseName *string
	}
	if err := q.Order("invoices.invoice_date DESC, invoices.invoice_number DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]invoice.Summary, len(rows))
	for i, row := range rows {
		out[i] = invoice.Summary{
			ID:            row.ID,
			Type:          invoice.Type(row.InvoiceType),
			Number:        row.InvoiceNumber,
			Date:          row.InvoiceDate,
			WarehouseID:   row.WarehouseID,
			WarehouseName: deref(row.WarehouseName),
			TotalValue:    row.TotalValue,
			Checked:       row.Checked,
		}
	}
	return out, nil
}

// NumberExists reports whether an invoice of the type already uses the number
func (r *GormInvoiceRepository) NumberExists(ctx context.Context, t invoice.Type, number string, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("invoice_type = ? AND invoice_number = ?", string(t), number)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateHeader writes the header columns, leaving lines and totals alone
func (r *GormInvoiceRepository) UpdateHeader(ctx context.Context, inv *invoice.Invoice) error {
	res := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"invoice_type":      string(inv.Type),
			"invoice_number":    inv.Number,
			"invoice_date":      inv.Date,
			"invoice_time":      inv.Time,
			"warehouse_id":      inv.WarehouseID,
			"poultry_status_id": inv.PoultryStatusID,
			"notes":             inv.Notes,
			"updated_at":        inv.UpdatedAt,
		})
	if res.Error != nil {
		return translateError(res.Error, "invoice")
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("invoice")
	}
	return nil
}

// SetChecked flips the reviewed flag
func (r *GormInvoiceRepository) SetChecked(ctx context.Context, id uuid.UUID, checked bool) error {
	res := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("id = ?", id).Update("checked", checked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("invoice")
	}
	return nil
}

// Delete removes the invoice with its items and expenses
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("invoice_id = ?", id).Delete(&models.InvoiceItemModel{}).Error; err != nil {
		return err
	}
	if err := r.expenses.DeleteByOwner(ctx, document.KindInvoice, id); err != nil {
		return err
	}
	return deleteByID(db, &models.InvoiceModel{}, id, "invoice")
}

// AddItem inserts a line item
func (r *GormInvoiceRepository) AddItem(ctx context.Context, item *invoice.Item) error {
	return translateError(r.db.WithContext(ctx).Create(models.InvoiceItemModelFromDomain(item)).Error, "invoice item")
}

// FindItem loads a line item
func (r *GormInvoiceRepository) FindItem(ctx context.Context, id uuid.UUID) (*invoice.Item, error) {
	var m models.InvoiceItemModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "invoice item")
	}
	return m.ToDomain(), nil
}

// DeleteItem removes a line item
func (r *GormInvoiceRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.InvoiceItemModel{}, id, "invoice item")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ invoice.Repository = (*GormInvoiceRepository)(nil)
