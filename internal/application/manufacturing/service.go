// Package manufacturing implements the feed manufacturing actions.
package manufacturing

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/manufacturing"
	"github.com/kdirani/farms/internal/domain/shared"
)

const kind = document.KindManufacturing

// Service handles manufacturing batches
type Service struct {
	scope   ledger.TransactionScope
	batches manufacturing.Repository
	files   attachment.Purger
	pages   action.Invalidator
}

// NewService creates a new manufacturing Service
func NewService(scope ledger.TransactionScope, batches manufacturing.Repository, files attachment.Purger, pages action.Invalidator) *Service {
	return &Service{scope: scope, batches: batches, files: files, pages: pages}
}

// Create stores a batch with its lines and total in one transaction
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	h, err := req.header()
	if err != nil {
		return nil, err
	}
	m, err := manufacturing.New(h)
	if err != nil {
		return nil, err
	}
	for _, in := range req.Items {
		item, err := manufacturing.NewItem(m.ID, in.toDomain())
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, *item)
	}
	for _, in := range req.Expenses {
		e, err := document.NewExpense(m.ID, in.ExpenseTypeID, in.Amount, in.AccountName)
		if err != nil {
			return nil, err
		}
		m.Expenses = append(m.Expenses, *e)
	}
	m.RecalculateTotal()

	err = s.scope.Execute(ctx, func(repos ledger.Repositories) error {
		if err := repos.Manufacturing().Create(ctx, m); err != nil {
			return err
		}
		total, err := repos.Totals().Recompute(ctx, kind, m.ID)
		m.TotalValue = total
		return err
	})
	if err != nil {
		return nil, err
	}

	action.Invalidate(ctx, s.pages, kind.Pages()...)
	resp := ToResponse(m)
	return &resp, nil
}

// List returns batches, optionally for one warehouse
func (s *Service) List(ctx context.Context, warehouseID *uuid.UUID) ([]Response, error) {
	rows, err := s.batches.FindAll(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]Response, len(rows))
	for i := range rows {
		out[i] = ToResponse(&rows[i])
	}
	return out, nil
}

// Get returns a batch with its lines
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Response, error) {
	m, err := s.batches.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(m)
	return &resp, nil
}

// Delete removes a batch with its lines and attachments
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	err := s.files.Purge(ctx, kind, id, func(ctx context.Context) error {
		return s.scope.Execute(ctx, func(repos ledger.Repositories) error {
			return repos.Manufacturing().Delete(ctx, id)
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, kind.Pages()...)
	return id, nil
}

// AddItem inserts a raw material line and recomputes the total
func (s *Service) AddItem(ctx context.Context, batchID uuid.UUID, req ItemRequest) (*ledger.LineChange, error) {
	item, err := manufacturing.NewItem(batchID, req.toDomain())
	if err != nil {
		return nil, err
	}
	total, err := ledger.Mutate(ctx, s.scope, kind, batchID, func(repos ledger.Repositories) error {
		return repos.Manufacturing().AddItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, kind.Pages()...)
	return &ledger.LineChange{ID: item.ID, OwnerID: batchID, TotalValue: total}, nil
}

// DeleteItem removes a raw material line of batch ownerID and recomputes the total
func (s *Service) DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) (*ledger.LineChange, error) {
	item, err := s.batches.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.InvoiceID != ownerID {
		return nil, shared.NotFound("manufacturing item")
	}
	total, err := ledger.Mutate(ctx, s.scope, kind, item.InvoiceID, func(repos ledger.Repositories) error {
		return repos.Manufacturing().DeleteItem(ctx, itemID)
	})
	if err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, kind.Pages()...)
	return &ledger.LineChange{ID: itemID, OwnerID: item.InvoiceID, TotalValue: total}, nil
}
