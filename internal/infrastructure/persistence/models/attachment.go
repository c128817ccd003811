package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/attachment"
	"github.com/kdirani/farms/internal/domain/document"
)

// AttachmentModel is the row shape shared by the per-kind attachment tables.
// Their indexes are declared in the SQL migrations since one Go type backs
// several tables.
type AttachmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordID   uuid.UUID `gorm:"type:uuid;not null"`
	FileURL    string    `gorm:"size:1024;not null"`
	FileName   string    `gorm:"size:255;not null"`
	FileType   string    `gorm:"size:128;not null"`
	FileSize   int64     `gorm:"not null"`
	StorageKey string    `gorm:"size:512;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// ToDomain converts the row to a domain attachment of the given kind
func (m *AttachmentModel) ToDomain(kind document.Kind) *attachment.Attachment {
	return &attachment.Attachment{
		ID:         m.ID,
		Kind:       kind,
		RecordID:   m.RecordID,
		FileURL:    m.FileURL,
		FileName:   m.FileName,
		FileType:   m.FileType,
		FileSize:   m.FileSize,
		StorageKey: m.StorageKey,
		CreatedAt:  m.CreatedAt,
	}
}

// AttachmentModelFromDomain converts a domain attachment to a row
func AttachmentModelFromDomain(a *attachment.Attachment) *AttachmentModel {
	return &AttachmentModel{
		ID:         a.ID,
		RecordID:   a.RecordID,
		FileURL:    a.FileURL,
		FileName:   a.FileName,
		FileType:   a.FileType,
		FileSize:   a.FileSize,
		StorageKey: a.StorageKey,
		CreatedAt:  a.CreatedAt,
	}
}
