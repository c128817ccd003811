// Package attachment uploads, lists and removes the files attached to
// invoices, manufacturing batches, medicine consumption records and daily
// reports.
package attachment

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/domain/attachment"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// BlobStore stores attachment bodies
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Purger removes a record together with its attachments
type Purger interface {
	Purge(ctx context.Context, kind document.Kind, recordID uuid.UUID, deleteRecord func(ctx context.Context) error) error
}

// FileUpload is a file received from a client
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Response is an attachment in API responses
type Response struct {
	ID         uuid.UUID `json:"id"`
	RecordID   uuid.UUID `json:"record_id"`
	FileURL    string    `json:"file_url"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts a domain attachment
func ToResponse(a *attachment.Attachment) Response {
	return Response{
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

// Service manages attachments for every record kind
type Service struct {
	repo    attachment.Repository
	records attachment.RecordLookup
	blobs   BlobStore
	pages   action.Invalidator
	maxSize int64
}

// NewService creates a new attachment Service. A non-positive maxSize uses
// attachment.MaxFileSize.
func NewService(repo attachment.Repository, records attachment.RecordLookup, blobs BlobStore, pages action.Invalidator, maxSize int64) *Service {
	if maxSize <= 0 {
		maxSize = attachment.MaxFileSize
	}
	return &Service{repo: repo, records: records, blobs: blobs, pages: pages, maxSize: maxSize}
}

// Upload stores the file under the record's folder and inserts its row.
// When the insert fails the uploaded blob is deleted again.
func (s *Service) Upload(ctx context.Context, kind document.Kind, recordID uuid.UUID, file FileUpload) (*Response, error) {
	if err := attachment.ValidateFile(file.Name, file.ContentType, file.Size, s.maxSize); err != nil {
		return nil, err
	}
	subtype, err := s.records.RecordSubtype(ctx, kind, recordID)
	if err != nil {
		return nil, err
	}
	folder, err := attachment.Folder(kind, subtype)
	if err != nil {
		return nil, err
	}

	key := attachment.BuildStorageKey(folder, recordID, file.Name)
	url, err := s.blobs.Upload(ctx, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		return nil, err
	}

	a, err := attachment.New(kind, recordID, file.Name, file.ContentType, file.Size, key, url, s.maxSize)
	if err == nil {
		err = s.repo.Save(ctx, a)
	}
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			logger.FromContext(ctx).Error("failed to remove orphaned blob",
				zap.String("storage_key", key),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	action.Invalidate(ctx, s.pages, kind.Pages()...)
	resp := ToResponse(a)
	return &resp, nil
}

// List returns the attachments of a record, newest first
func (s *Service) List(ctx context.Context, kind document.Kind, recordID uuid.UUID) ([]Response, error) {
	rows, err := s.repo.ListByRecord(ctx, kind, recordID)
	if err != nil {
		return nil, err
	}
	out := make([]Response, len(rows))
	for i := range rows {
		out[i] = ToResponse(&rows[i])
	}
	return out, nil
}

// Delete removes the blob and then the row. A blob that cannot be deleted
// is logged and left behind.
func (s *Service) Delete(ctx context.Context, kind document.Kind, id uuid.UUID) (uuid.UUID, error) {
	a, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return uuid.Nil, err
	}
	s.deleteBlob(ctx, a.StorageKey)
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return uuid.Nil, err
	}
	action.Invalidate(ctx, s.pages, kind.Pages()...)
	return id, nil
}

// Purge deletes a record through deleteRecord and then its attachment rows
// and blobs. Attachments are read first so their keys survive a cascading
// delete of the record.
func (s *Service) Purge(ctx context.Context, kind document.Kind, recordID uuid.UUID, deleteRecord func(ctx context.Context) error) error {
	attachments, err := s.repo.ListByRecord(ctx, kind, recordID)
	if err != nil {
		return err
	}
	if err := deleteRecord(ctx); err != nil {
		return err
	}
	if len(attachments) == 0 {
		return nil
	}
	if err := s.repo.DeleteByRecord(ctx, kind, recordID); err != nil {
		logger.FromContext(ctx).Warn("failed to delete attachment rows",
			zap.String("kind", string(kind)),
			zap.String("record_id", recordID.String()),
			zap.Error(err),
		)
	}
	for _, a := range attachments {
		s.deleteBlob(ctx, a.StorageKey)
	}
	return nil
}

func (s *Service) deleteBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Warn("failed to delete blob",
			zap.String("storage_key", key),
			zap.Error(err),
		)
	}
}

var _ Purger = (*Service)(nil)
