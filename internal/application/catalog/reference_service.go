package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/catalog"
)

// Page paths listing reference data
const (
	PageMedicines    = "/medicines"
	PageExpenseTypes = "/expense-types"
)

// ReferenceService manages medicines and expense types
type ReferenceService struct {
	medicines    catalog.MedicineRepository
	expenseTypes catalog.ExpenseTypeRepository
	pages        action.Invalidator
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(medicines catalog.MedicineRepository, expenseTypes catalog.ExpenseTypeRepository, pages action.Invalidator) *ReferenceService {
	return &ReferenceService{medicines: medicines, expenseTypes: expenseTypes, pages: pages}
}

// CreateMedicine adds a medicine
func (s *ReferenceService) CreateMedicine(ctx context.Context, req CreateMedicineRequest) (*MedicineResponse, error) {
	m, err := catalog.NewMedicine(req.Name, req.Description, req.DayOfAdministration)
	if err != nil {
		return nil, err
	}
	if err := s.medicines.Save(ctx, m); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageMedicines)
	resp := ToMedicineResponse(m)
	return &resp, nil
}

// ListMedicines lists medicines by name
func (s *ReferenceService) ListMedicines(ctx context.Context) ([]MedicineResponse, error) {
	rows, err := s.medicines.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MedicineResponse, len(rows))
	for i := range rows {
		out[i] = ToMedicineResponse(&rows[i])
	}
	return out, nil
}

// DeleteMedicine removes a medicine
func (s *ReferenceService) DeleteMedicine(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.medicines.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageMedicines)
	return id, nil
}

// CreateExpenseType adds an expense type
func (s *ReferenceService) CreateExpenseType(ctx context.Context, req CreateExpenseTypeRequest) (*ExpenseTypeResponse, error) {
	e, err := catalog.NewExpenseType(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.expenseTypes.Save(ctx, e); err != nil {
		return nil, err
	}
	action.Invalidate(ctx, s.pages, PageExpenseTypes)
	return &ExpenseTypeResponse{ID: e.ID, Name: e.Name}, nil
}

// ListExpenseTypes lists expense types by name
func (s *ReferenceService) ListExpenseTypes(ctx context.Context) ([]ExpenseTypeResponse, error) {
	rows, err := s.expenseTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseTypeResponse, len(rows))
	for i, e := range rows {
		out[i] = ExpenseTypeResponse{ID: e.ID, Name: e.Name}
	}
	return out, nil
}

// DeleteExpenseType removes an expense type
func (s *ReferenceService) DeleteExpenseType(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if err := s.expenseTypes.Delete(ctx, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, PageExpenseTypes)
	return id, nil
}
