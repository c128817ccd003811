// Package printing renders enriched invoices to PDF.
package printing

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/catalog"
	"github.com/kdirani/farms/internal/domain/inventory"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/kdirani/farms/internal/domain/shared"
	infra "github.com/kdirani/farms/internal/infrastructure/printing"
	"go.uber.org/zap"
)

const defaultLocale = "ar"

// InvoiceReader loads an invoice joined with its reference names
type InvoiceReader interface {
	FindEnriched(ctx context.Context, id uuid.UUID) (*invoice.Enriched, error)
}

// InvoicePrintService builds the printable view of an invoice and renders it
type InvoicePrintService struct {
	invoices     InvoiceReader
	materials    inventory.MaterialNameRepository
	units        inventory.UnitRepository
	expenseTypes catalog.ExpenseTypeRepository
	renderer     infra.PDFRenderer
	logger       *zap.Logger
}

// NewInvoicePrintService creates a new InvoicePrintService. A nil renderer
// disables printing.
func NewInvoicePrintService(
	invoices InvoiceReader,
	materials inventory.MaterialNameRepository,
	units inventory.UnitRepository,
	expenseTypes catalog.ExpenseTypeRepository,
	renderer infra.PDFRenderer,
	logger *zap.Logger,
) *InvoicePrintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoicePrintService{
		invoices:     invoices,
		materials:    materials,
		units:        units,
		expenseTypes: expenseTypes,
		renderer:     renderer,
		logger:       logger,
	}
}

// Enabled reports whether a renderer is configured
func (s *InvoicePrintService) Enabled() bool {
	return s.renderer != nil
}

// RenderInvoicePDF prints an invoice
func (s *InvoicePrintService) RenderInvoicePDF(ctx context.Context, id uuid.UUID, req PrintInvoiceRequest) (*PDFDocument, error) {
	if !s.Enabled() {
		return nil, shared.NewDomainError("INVALID_STATE", "invoice printing is disabled")
	}
	view, err := s.BuildView(ctx, id)
	if err != nil {
		return nil, err
	}

	locale := req.Locale
	if locale == "" {
		locale = defaultLocale
	}
	html, err := infra.RenderInvoiceHTML(*view, locale)
	if err != nil {
		return nil, err
	}
	paper := infra.PaperSizeA4
	if req.PaperSize == string(infra.PaperSizeA5) {
		paper = infra.PaperSizeA5
	}

	result, err := s.renderer.Render(ctx, &infra.RenderRequest{
		HTML:      html,
		Title:     view.Number,
		PaperSize: paper,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("invoice printed",
		zap.String("invoice_id", id.String()),
		zap.String("locale", locale),
		zap.Duration("duration", result.RenderDuration),
	)
	return &PDFDocument{
		FileName: "invoice-" + view.Type + "-" + view.Number + ".pdf",
		Data:     result.PDFData,
	}, nil
}

// BuildView resolves the names behind an invoice's lines
func (s *InvoicePrintService) BuildView(ctx context.Context, id uuid.UUID) (*infra.InvoiceView, error) {
	e, err := s.invoices.FindEnriched(ctx, id)
	if err != nil {
		return nil, err
	}
	materials, err := s.materialNames(ctx)
	if err != nil {
		return nil, err
	}
	units, err := s.unitNames(ctx)
	if err != nil {
		return nil, err
	}
	expenseTypes, err := s.expenseTypeNames(ctx)
	if err != nil {
		return nil, err
	}

	view := &infra.InvoiceView{
		Number:    e.Number,
		Type:      string(e.Type),
		Date:      e.Date,
		Time:      e.Time,
		Warehouse: e.WarehouseName,
		Farm:      e.FarmName,
		Batch:     e.PoultryBatchName,
		Checked:   e.Checked,
		Notes:     e.Notes,
		Total:     e.TotalValue,
	}
	for _, it := range e.Items {
		line := infra.InvoiceLine{
			Material: lookup(materials, it.MaterialNameID),
			Unit:     lookup(units, it.UnitID),
			Quantity: it.Quantity,
			Price:    it.Price,
			Value:    it.Value,
		}
		if !it.Weight.IsZero() {
			w := it.Weight
			line.Weight = &w
		}
		view.Items = append(view.Items, line)
		view.ItemsTotal = view.ItemsTotal.Add(it.Value)
	}
	for _, ex := range e.Expenses {
		view.Expenses = append(view.Expenses, infra.ExpenseLine{
			Type:    lookup(expenseTypes, &ex.ExpenseTypeID),
			Account: ex.AccountName,
			Amount:  ex.Amount,
		})
		view.ExpensesSum = view.ExpensesSum.Add(ex.Amount)
	}
	if view.Total.IsZero() {
		view.Total = view.ItemsTotal.Add(view.ExpensesSum)
	}
	return view, nil
}

func lookup(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func (s *InvoicePrintService) materialNames(ctx context.Context) (map[uuid.UUID]string, error) {
	rows, err := s.materials.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}

func (s *InvoicePrintService) unitNames(ctx context.Context) (map[uuid.UUID]string, error) {
	rows, err := s.units.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}

func (s *InvoicePrintService) expenseTypeNames(ctx context.Context) (map[uuid.UUID]string, error) {
	rows, err := s.expenseTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}
