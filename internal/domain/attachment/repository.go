package attachment

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
)

// Repository persists attachment rows in the table of each kind
type Repository interface {
	Save(ctx context.Context, a *Attachment) error
	FindByID(ctx context.Context, kind document.Kind, id uuid.UUID) (*Attachment, error)
	ListByRecord(ctx context.Context, kind document.Kind, recordID uuid.UUID) ([]Attachment, error)
	Delete(ctx context.Context, kind document.Kind, id uuid.UUID) error
	DeleteByRecord(ctx context.Context, kind document.Kind, recordID uuid.UUID) error
}

// RecordLookup resolves the parent record of an attachment. It returns the
// invoice type ("buy"/"sell") for invoices and an empty string otherwise.
type RecordLookup interface {
	RecordSubtype(ctx context.Context, kind document.Kind, recordID uuid.UUID) (string, error)
}
