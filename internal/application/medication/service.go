// Package medication implements the medicine consumption actions.
package medication

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/medication"
	"github.com/kdirani/farms/internal/domain/shared"
)

const kind = document.KindMedicineConsumption

// Service handles medicine consumption invoices
type Service struct {
	scope        ledger.TransactionScope
	consumptions medication.Repository
	files        attachment.Purger
	pages        action.Invalidator
}

// NewService creates a new medication Service
func NewService(scope ledger.TransactionScope, consumptions medication.Repository, files attachment.Purger, pages action.Invalidator) *Service {
	return &Service{scope: scope, consumptions: consumptions, files: files, pages: pages}
}

func (s *Service) invalidate(ctx context.Context) {
	action.Invalidate(ctx, s.pages, kind.Pages()...)
}

// Create stores a consumption invoice with its lines and total
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	date, err := shared.ParseDate("consumption_date", req.ConsumptionDate)
	if err != nil {
		return nil, err
	}
	c, err := medication.New(medication.Header{
		Number:          req.InvoiceNumber,
		WarehouseID:     req.WarehouseID,
		PoultryStatusID: req.PoultryStatusID,
		Date:            date,
		Time:            req.ConsumptionTime,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, err
	}
	for _, r := range req.Items {
		in, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		item, err := medication.NewItem(c.ID, in)
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, *item)
	}
	for _, r := range req.Expenses {
		e, err := document.NewExpense(c.ID, r.ExpenseTypeID, r.Amount, r.AccountName)
		if err != nil {
			return nil, err
		}
		c.Expenses = append(c.Expenses, *e)
	}
	c.RecalculateTotal()

	err = s.scope.Execute(ctx, func(repos ledger.Repositories) error {
		if err := repos.Consumptions().Create(ctx, c); err != nil {
			return err
		}
		total, err := repos.Totals().Recompute(ctx, kind, c.ID)
		c.TotalValue = total
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	resp := ToResponse(c)
	return &resp, nil
}

// List returns consumption invoices, optionally for one warehouse
func (s *Service) List(ctx context.Context, warehouseID *uuid.UUID) ([]Response, error) {
	rows, err := s.consumptions.FindAll(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]Response, len(rows))
	for i := range rows {
		out[i] = ToResponse(&rows[i])
	}
	return out, nil
}

// Get returns a consumption invoice with its lines
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Response, error) {
	c, err := s.consumptions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(c)
	return &resp, nil
}

// Delete removes a consumption invoice with its lines and attachments
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	err := s.files.Purge(ctx, kind, id, func(ctx context.Context) error {
		return s.scope.Execute(ctx, func(repos ledger.Repositories) error {
			return repos.Consumptions().Delete(ctx, id)
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return id, nil
}

// AddItem inserts a medicine line and recomputes the total
func (s *Service) AddItem(ctx context.Context, consumptionID uuid.UUID, req ItemRequest) (*ledger.LineChange, error) {
	in, err := req.toDomain()
	if err != nil {
		return nil, err
	}
	item, err := medication.NewItem(consumptionID, in)
	if err != nil {
		return nil, err
	}
	total, err := ledger.Mutate(ctx, s.scope, kind, consumptionID, func(repos ledger.Repositories) error {
		return repos.Consumptions().AddItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &ledger.LineChange{ID: item.ID, OwnerID: consumptionID, TotalValue: total}, nil
}

// DeleteItem removes a medicine line of record ownerID and recomputes the total
func (s *Service) DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) (*ledger.LineChange, error) {
	item, err := s.consumptions.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.InvoiceID != ownerID {
		return nil, shared.NotFound("medicine consumption item")
	}
	total, err := ledger.Mutate(ctx, s.scope, kind, item.InvoiceID, func(repos ledger.Repositories) error {
		return repos.Consumptions().DeleteItem(ctx, itemID)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &ledger.LineChange{ID: itemID, OwnerID: item.InvoiceID, TotalValue: total}, nil
}
