package attachment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/attachment"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Save(ctx context.Context, a *attachment.Attachment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, kind document.Kind, id uuid.UUID) (*attachment.Attachment, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListByRecord(ctx context.Context, kind document.Kind, recordID uuid.UUID) ([]attachment.Attachment, error) {
	args := m.Called(ctx, kind, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attachment.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, kind document.Kind, id uuid.UUID) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockAttachmentRepository) DeleteByRecord(ctx context.Context, kind document.Kind, recordID uuid.UUID) error {
	return m.Called(ctx, kind, recordID).Error(0)
}

type MockRecordLookup struct {
	mock.Mock
}

func (m *MockRecordLookup) RecordSubtype(ctx context.Context, kind document.Kind, recordID uuid.UUID) (string, error) {
	args := m.Called(ctx, kind, recordID)
	return args.String(0), args.Error(1)
}

type recordingPages struct {
	prefixes []string
}

func (r *recordingPages) InvalidatePrefix(_ context.Context, prefix string) error {
	r.prefixes = append(r.prefixes, prefix)
	return nil
}

type fixture struct {
	repo    *MockAttachmentRepository
	records *MockRecordLookup
	blobs   *storage.MemoryBlobStore
	pages   *recordingPages
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(MockAttachmentRepository),
		records: new(MockRecordLookup),
		blobs:   storage.NewMemoryBlobStore("https://files.test"),
		pages:   &recordingPages{},
	}
	f.svc = NewService(f.repo, f.records, f.blobs, f.pages, 1024)
	return f
}

func pdf(body string) FileUpload {
	return FileUpload{
		Name:        "receipt march.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores sell invoice files under their folder", func(t *testing.T) {
		f := newFixture()
		recordID := uuid.New()
		f.records.On("RecordSubtype", ctx, document.KindInvoice, recordID).Return("sell", nil)
		f.repo.On("Save", ctx, mock.AnythingOfType("*attachment.Attachment")).Return(nil)

		resp, err := f.svc.Upload(ctx, document.KindInvoice, recordID, pdf("%PDF-1.4"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(resp.StorageKey, "invoices/sell/"+recordID.String()+"/"))
		assert.True(t, strings.HasSuffix(resp.StorageKey, "-receipt_march.pdf"))
		assert.Equal(t, "https://files.test/"+resp.StorageKey, resp.FileURL)
		assert.Equal(t, int64(8), resp.FileSize)

		blob, ok := f.blobs.Get(resp.StorageKey)
		require.True(t, ok)
		assert.Equal(t, "%PDF-1.4", string(blob.Data))
		assert.Equal(t, []string{"/invoices"}, f.pages.prefixes)
	})

	t.Run("insert failure removes the uploaded blob", func(t *testing.T) {
		f := newFixture()
		recordID := uuid.New()
		f.records.On("RecordSubtype", ctx, document.KindManufacturing, recordID).Return("", nil)
		f.repo.On("Save", ctx, mock.Anything).Return(errors.New("insert failed"))

		resp, err := f.svc.Upload(ctx, document.KindManufacturing, recordID, pdf("body"))
		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, 0, f.blobs.Len())
		assert.Empty(t, f.pages.prefixes)
	})

	t.Run("missing record uploads nothing", func(t *testing.T) {
		f := newFixture()
		recordID := uuid.New()
		f.records.On("RecordSubtype", ctx, document.KindDailyReport, recordID).
			Return("", shared.NotFound(string(document.KindDailyReport)))

		_, err := f.svc.Upload(ctx, document.KindDailyReport, recordID, pdf("body"))
		assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
		assert.Equal(t, 0, f.blobs.Len())
		f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("oversized file is rejected before lookup", func(t *testing.T) {
		f := newFixture()
		big := strings.Repeat("x", 2048)

		_, err := f.svc.Upload(ctx, document.KindInvoice, uuid.New(), pdf(big))
		assert.Equal(t, "INVALID_FILE_SIZE", shared.ErrorCode(err))
		f.records.AssertNotCalled(t, "RecordSubtype", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("disallowed content type", func(t *testing.T) {
		f := newFixture()
		file := pdf("MZ")
		file.ContentType = "application/x-msdownload"

		_, err := f.svc.Upload(ctx, document.KindInvoice, uuid.New(), file)
		assert.Equal(t, "INVALID_CONTENT_TYPE", shared.ErrorCode(err))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	recordID := uuid.New()
	key := attachment.BuildStorageKey(attachment.FolderDailyReports, recordID, "scan.png")
	_, err := f.blobs.Upload(ctx, key, strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)

	id := uuid.New()
	f.repo.On("FindByID", ctx, document.KindDailyReport, id).
		Return(&attachment.Attachment{ID: id, RecordID: recordID, StorageKey: key}, nil)
	f.repo.On("Delete", ctx, document.KindDailyReport, id).Return(nil)

	deleted, err := f.svc.Delete(ctx, document.KindDailyReport, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted)
	assert.Equal(t, 0, f.blobs.Len())
	assert.Equal(t, []string{"/daily-reports"}, f.pages.prefixes)
}

func TestService_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes record then rows and blobs", func(t *testing.T) {
		f := newFixture()
		recordID := uuid.New()
		key := attachment.BuildStorageKey(attachment.FolderMedicineConsumption, recordID, "a.pdf")
		_, err := f.blobs.Upload(ctx, key, strings.NewReader("a"), 1, "application/pdf")
		require.NoError(t, err)

		f.repo.On("ListByRecord", ctx, document.KindMedicineConsumption, recordID).
			Return([]attachment.Attachment{{StorageKey: key}}, nil)
		f.repo.On("DeleteByRecord", ctx, document.KindMedicineConsumption, recordID).Return(nil)

		called := false
		err = f.svc.Purge(ctx, document.KindMedicineConsumption, recordID, func(context.Context) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, 0, f.blobs.Len())
	})

	t.Run("failed record delete keeps blobs", func(t *testing.T) {
		f := newFixture()
		recordID := uuid.New()
		key := attachment.BuildStorageKey(attachment.FolderManufacturing, recordID, "a.pdf")
		_, err := f.blobs.Upload(ctx, key, strings.NewReader("a"), 1, "application/pdf")
		require.NoError(t, err)

		f.repo.On("ListByRecord", ctx, document.KindManufacturing, recordID).
			Return([]attachment.Attachment{{StorageKey: key}}, nil)

		err = f.svc.Purge(ctx, document.KindManufacturing, recordID, func(context.Context) error {
			return shared.NotFound("manufacturing")
		})
		assert.Equal(t, "NOT_FOUND", shared.ErrorCode(err))
		assert.Equal(t, 1, f.blobs.Len())
		f.repo.AssertNotCalled(t, "DeleteByRecord", mock.Anything, mock.Anything, mock.Anything)
	})
}
