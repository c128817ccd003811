// Package bootstrap wires repositories, services and handlers together.
package bootstrap

import (
	"github.com/kdirani/farms/internal/application/attachment"
	catalogapp "github.com/kdirani/farms/internal/application/catalog"
	farmapp "github.com/kdirani/farms/internal/application/farm"
	identityapp "github.com/kdirani/farms/internal/application/identity"
	inventoryapp "github.com/kdirani/farms/internal/application/inventory"
	invoiceapp "github.com/kdirani/farms/internal/application/invoice"
	"github.com/kdirani/farms/internal/application/ledger"
	manufacturingapp "github.com/kdirani/farms/internal/application/manufacturing"
	medicationapp "github.com/kdirani/farms/internal/application/medication"
	"github.com/kdirani/farms/internal/application/printing"
	reportapp "github.com/kdirani/farms/internal/application/report"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/persistence"
	infraprinting "github.com/kdirani/farms/internal/infrastructure/printing"
	"github.com/kdirani/farms/internal/interfaces/http/handler"
	"github.com/kdirani/farms/internal/interfaces/http/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the external resources the container is built from
type Deps struct {
	DB    *gorm.DB
	Blobs attachment.BlobStore
	// Pages may be nil when page caching is disabled
	Pages cache.PageCache
	// Renderer may be nil when invoice printing is disabled
	Renderer     infraprinting.PDFRenderer
	MaxFileSize  int64
	Logger       *zap.Logger
	AppName      string
	Version      string
	HealthChecks map[string]handler.HealthCheck
}

// Services holds every application service
type Services struct {
	Farms         *farmapp.Service
	Materials     *inventoryapp.MaterialService
	References    *catalogapp.ReferenceService
	Invoices      *invoiceapp.Service
	Manufacturing *manufacturingapp.Service
	Medication    *medicationapp.Service
	Expenses      *ledger.ExpenseService
	Attachments   *attachment.Service
	Reports       *reportapp.DailyReportService
	Profiles      *identityapp.ProfileService
	Printing      *printing.InvoicePrintService
}

// NewServices builds the repositories and services on top of d
func NewServices(d Deps) *Services {
	db := d.DB
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pages := d.Pages

	farmRepo := persistence.NewGormFarmRepository(db)
	warehouseRepo := persistence.NewGormWarehouseRepository(db)
	poultryRepo := persistence.NewGormPoultryStatusRepository(db)
	unitRepo := persistence.NewGormUnitRepository(db)
	materialNameRepo := persistence.NewGormMaterialNameRepository(db)
	materialRepo := persistence.NewGormMaterialRepository(db)
	medicineRepo := persistence.NewGormMedicineRepository(db)
	expenseTypeRepo := persistence.NewGormExpenseTypeRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	manufacturingRepo := persistence.NewGormManufacturingRepository(db)
	medicationRepo := persistence.NewGormMedicationRepository(db)
	expenseRepo := persistence.NewGormExpenseRepository(db)
	attachmentRepo := persistence.NewGormAttachmentRepository(db)
	reportRepo := persistence.NewGormDailyReportRepository(db)
	profileRepo := persistence.NewGormProfileRepository(db)
	scope := persistence.NewGormTransactionScope(db)

	files := attachment.NewService(attachmentRepo, attachmentRepo, d.Blobs, pages, d.MaxFileSize)

	return &Services{
		Farms:         farmapp.NewService(farmRepo, warehouseRepo, poultryRepo, pages),
		Materials:     inventoryapp.NewMaterialService(unitRepo, materialNameRepo, materialRepo, pages),
		References:    catalogapp.NewReferenceService(medicineRepo, expenseTypeRepo, pages),
		Invoices:      invoiceapp.NewService(scope, invoiceRepo, files, pages),
		Manufacturing: manufacturingapp.NewService(scope, manufacturingRepo, files, pages),
		Medication:    medicationapp.NewService(scope, medicationRepo, files, pages),
		Expenses:      ledger.NewExpenseService(scope, expenseRepo, pages),
		Attachments:   files,
		Reports:       reportapp.NewDailyReportService(reportRepo, files, pages),
		Profiles:      identityapp.NewProfileService(profileRepo, farmRepo, pages),
		Printing: printing.NewInvoicePrintService(
			invoiceRepo, materialNameRepo, unitRepo, expenseTypeRepo, d.Renderer, logger,
		),
	}
}

// NewHandlers builds the HTTP handlers for s
func NewHandlers(s *Services, d Deps) router.Handlers {
	expenses := make(map[document.Kind]*handler.ExpenseHandler)
	for _, kind := range []document.Kind{
		document.KindInvoice,
		document.KindManufacturing,
		document.KindMedicineConsumption,
	} {
		expenses[kind] = handler.NewExpenseHandler(s.Expenses, kind)
	}

	attachments := make(map[document.Kind]*handler.AttachmentHandler)
	for _, kind := range []document.Kind{
		document.KindInvoice,
		document.KindManufacturing,
		document.KindMedicineConsumption,
		document.KindDailyReport,
	} {
		attachments[kind] = handler.NewAttachmentHandler(s.Attachments, kind)
	}

	return router.Handlers{
		Farm:          handler.NewFarmHandler(s.Farms),
		Inventory:     handler.NewInventoryHandler(s.Materials),
		Catalog:       handler.NewCatalogHandler(s.References),
		Invoice:       handler.NewInvoiceHandler(s.Invoices, s.Printing),
		Manufacturing: handler.NewManufacturingHandler(s.Manufacturing),
		Medication:    handler.NewMedicationHandler(s.Medication),
		Report:        handler.NewReportHandler(s.Reports),
		User:          handler.NewUserHandler(s.Profiles),
		System:        handler.NewSystemHandler(d.AppName, d.Version, d.HealthChecks),
		Expenses:      expenses,
		Attachments:   attachments,
	}
}
