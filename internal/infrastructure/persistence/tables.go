package persistence

import (
	"fmt"

	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// kindTables names the tables behind one record kind
type kindTables struct {
	parent      string
	items       string
	expenses    string
	attachments string
}

var tablesByKind = map[document.Kind]kindTables{
	document.KindInvoice: {
		parent:      "invoices",
		items:       "invoice_items",
		expenses:    "invoice_expenses",
		attachments: "invoice_attachments",
	},
	document.KindManufacturing: {
		parent:      "manufacturing_invoices",
		items:       "manufacturing_invoice_items",
		expenses:    "manufacturing_invoice_expenses",
		attachments: "manufacturing_attachments",
	},
	document.KindMedicineConsumption: {
		parent:      "medicine_consumption_invoices",
		items:       "medicine_consumption_items",
		expenses:    "medicine_consumption_expenses",
		attachments: "medicine_consumption_attachments",
	},
	document.KindDailyReport: {
		parent:      "daily_reports",
		attachments: "daily_report_attachments",
	},
}

func tablesFor(kind document.Kind) (kindTables, error) {
	t, ok := tablesByKind[kind]
	if !ok {
		return kindTables{}, shared.Invalid(fmt.Sprintf("unknown record kind %q", kind))
	}
	return t, nil
}

func expenseTable(kind document.Kind) (string, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return "", err
	}
	if t.expenses == "" {
		return "", shared.Invalid(fmt.Sprintf("%s records do not carry expenses", kind))
	}
	return t.expenses, nil
}

// AutoMigrate creates or updates every table. It is used for sqlite
// development databases and tests; postgres deployments run the SQL
// migrations instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.ProfileModel{},
		&models.FarmModel{},
		&models.WarehouseModel{},
		&models.PoultryStatusModel{},
		&models.UnitModel{},
		&models.MaterialNameModel{},
		&models.MaterialModel{},
		&models.MedicineModel{},
		&models.ExpenseTypeModel{},
		&models.InvoiceModel{},
		&models.InvoiceItemModel{},
		&models.ManufacturingInvoiceModel{},
		&models.ManufacturingItemModel{},
		&models.MedicineConsumptionModel{},
		&models.MedicineConsumptionItemModel{},
		&models.DailyReportModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, t := range tablesByKind {
		if t.expenses != "" {
			if err := db.Table(t.expenses).AutoMigrate(&models.ExpenseModel{}); err != nil {
				return fmt.Errorf("auto migrate %s: %w", t.expenses, err)
			}
		}
		if err := db.Table(t.attachments).AutoMigrate(&models.AttachmentModel{}); err != nil {
			return fmt.Errorf("auto migrate %s: %w", t.attachments, err)
		}
	}
	return nil
}
