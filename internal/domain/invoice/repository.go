package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter narrows invoice listings
type Filter struct {
	Type        *Type
	WarehouseID *uuid.UUID
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// Enriched is an invoice joined with the names of the rows it references.
type Enriched struct {
	Invoice
	WarehouseName    string
	FarmName         string
	PoultryBatchName string
}

// Summary is a listing row
type Summary struct {
	ID            uuid.UUID
	Type          Type
	Number        string
	Date          time.Time
	WarehouseID   uuid.UUID
	WarehouseName string
	TotalValue    decimal.Decimal
	Checked       bool
}

// Repository persists invoices and their items. Create stores header,
// items and expenses together.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindEnriched(ctx context.Context, id uuid.UUID) (*Enriched, error)
	FindAll(ctx context.Context, filter Filter) ([]Summary, error)
	NumberExists(ctx context.Context, t Type, number string, excludeID *uuid.UUID) (bool, error)
	UpdateHeader(ctx context.Context, inv *Invoice) error
	SetChecked(ctx context.Context, id uuid.UUID, checked bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddItem(ctx context.Context, item *Item) error
	FindItem(ctx context.Context, id uuid.UUID) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
