package farm

import (
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/shared"
)

// PoultryStatus tracks a flock (batch) on a farm.
type PoultryStatus struct {
	shared.BaseEntity
	FarmID          uuid.UUID
	BatchName       string
	OpeningChicks   int
	DeadChicks      int
	RemainingChicks int
}

// NewPoultryStatus creates a batch and derives the remaining count
func NewPoultryStatus(farmID uuid.UUID, batchName string, opening, dead int) (*PoultryStatus, error) {
	if farmID == uuid.Nil {
		return nil, shared.Invalid("farm id is required")
	}
	n, err := shared.RequireName("batch name", batchName, 200)
	if err != nil {
		return nil, err
	}
	ps := &PoultryStatus{BaseEntity: shared.NewBaseEntity(), FarmID: farmID, BatchName: n}
	if err := ps.SetCounts(opening, dead); err != nil {
		return nil, err
	}
	return ps, nil
}

// SetCounts updates chick counts keeping RemainingChicks = Opening - Dead
func (p *PoultryStatus) SetCounts(opening, dead int) error {
	if opening < 0 || dead < 0 {
		return shared.Invalid("chick counts cannot be negative")
	}
	if dead > opening {
		return shared.Invalid("dead chicks cannot exceed opening chicks")
	}
	p.OpeningChicks = opening
	p.DeadChicks = dead
	p.RemainingChicks = opening - dead
	p.Touch()
	return nil
}
