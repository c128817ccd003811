// Package invoice implements the buy and sell invoice actions.
package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/kdirani/farms/internal/domain/shared"
)

// Service handles invoice operations
type Service struct {
	scope    ledger.TransactionScope
	invoices invoice.Repository
	files    attachment.Purger
	pages    action.Invalidator
}

// NewService creates a new invoice Service
func NewService(scope ledger.TransactionScope, invoices invoice.Repository, files attachment.Purger, pages action.Invalidator) *Service {
	return &Service{scope: scope, invoices: invoices, files: files, pages: pages}
}

func (s *Service) invalidate(ctx context.Context) {
	action.Invalidate(ctx, s.pages, document.KindInvoice.Pages()...)
}

func (s *Service) requireUniqueNumber(ctx context.Context, t invoice.Type, number string, exclude *uuid.UUID) error {
	exists, err := s.invoices.NumberExists(ctx, t, number, exclude)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("CONFLICT", "invoice number "+number+" already exists for "+string(t)+" invoices")
	}
	return nil
}

// Create stores the invoice with its items and expenses and its computed
// total in one transaction.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	header, err := req.HeaderRequest.toDomain()
	if err != nil {
		return nil, err
	}
	inv, err := invoice.New(header)
	if err != nil {
		return nil, err
	}
	for _, it := range req.Items {
		if _, err := inv.AddItem(it.toDomain()); err != nil {
			return nil, err
		}
	}
	for _, e := range req.Expenses {
		if _, err := inv.AddExpense(e.ExpenseTypeID, e.Amount, e.AccountName); err != nil {
			return nil, err
		}
	}
	inv.RecalculateTotal()

	if err := s.requireUniqueNumber(ctx, inv.Type, inv.Number, nil); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos ledger.Repositories) error {
		if err := repos.Invoices().Create(ctx, inv); err != nil {
			return err
		}
		total, err := repos.Totals().Recompute(ctx, document.KindInvoice, inv.ID)
		if err != nil {
			return err
		}
		inv.TotalValue = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// List returns invoice summaries, newest first
func (s *Service) List(ctx context.Context, req ListInvoicesRequest) ([]SummaryResponse, error) {
	filter, err := req.toFilter()
	if err != nil {
		return nil, err
	}
	rows, err := s.invoices.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToSummaryResponses(rows), nil
}

// Get returns an invoice with its lines
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// GetEnriched returns an invoice with its warehouse, farm and batch names
func (s *Service) GetEnriched(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	e, err := s.invoices.FindEnriched(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEnrichedResponse(e)
	return &resp, nil
}

// Update replaces the header fields. Lines and total are untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	header, err := req.HeaderRequest.toDomain()
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := inv.SetHeader(header); err != nil {
		return nil, err
	}
	if err := s.requireUniqueNumber(ctx, inv.Type, inv.Number, &inv.ID); err != nil {
		return nil, err
	}
	if err := s.invoices.UpdateHeader(ctx, inv); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// SetChecked marks the invoice as reviewed or not
func (s *Service) SetChecked(ctx context.Context, id uuid.UUID, checked bool) (uuid.UUID, error) {
	if err := s.invoices.SetChecked(ctx, id, checked); err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return id, nil
}

// Delete removes the invoice with its lines and attachments. Attachment
// blobs are removed after the rows are gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	err := s.files.Purge(ctx, document.KindInvoice, id, func(ctx context.Context) error {
		return s.scope.Execute(ctx, func(repos ledger.Repositories) error {
			return repos.Invoices().Delete(ctx, id)
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return id, nil
}

// AddItem inserts a line item and recomputes the invoice total
func (s *Service) AddItem(ctx context.Context, invoiceID uuid.UUID, req ItemRequest) (*ledger.LineChange, error) {
	item, err := invoice.NewItem(invoiceID, req.toDomain())
	if err != nil {
		return nil, err
	}
	total, err := ledger.Mutate(ctx, s.scope, document.KindInvoice, invoiceID, func(repos ledger.Repositories) error {
		return repos.Invoices().AddItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &ledger.LineChange{ID: item.ID, OwnerID: invoiceID, TotalValue: total}, nil
}

// DeleteItem removes a line item of invoice ownerID and recomputes its total
func (s *Service) DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) (*ledger.LineChange, error) {
	item, err := s.invoices.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.InvoiceID != ownerID {
		return nil, shared.NotFound("invoice item")
	}
	total, err := ledger.Mutate(ctx, s.scope, document.KindInvoice, item.InvoiceID, func(repos ledger.Repositories) error {
		return repos.Invoices().DeleteItem(ctx, itemID)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &ledger.LineChange{ID: itemID, OwnerID: item.InvoiceID, TotalValue: total}, nil
}
