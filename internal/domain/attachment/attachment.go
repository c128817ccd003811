// Package attachment models files uploaded against invoices, manufacturing
// batches, medicine consumption records and daily reports.
package attachment

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
)

// MaxFileSize is the default upload limit (25MB)
const MaxFileSize = 25 * 1024 * 1024

// Storage folders per record kind
const (
	FolderManufacturing       = "manufacturing"
	FolderInvoicesBuy         = "invoices/buy"
	FolderInvoicesSell        = "invoices/sell"
	FolderDailyReports        = "daily-reports"
	FolderMedicineConsumption = "medicine-consumption"
)

// AllowedContentTypes lists the MIME types accepted for attachments
var AllowedContentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
	"text/csv":   true,
}

// Attachment is a stored file plus the row that records where it lives.
type Attachment struct {
	ID         uuid.UUID
	Kind       document.Kind
	RecordID   uuid.UUID
	FileURL    string
	FileName   string
	FileType   string
	FileSize   int64
	StorageKey string
	CreatedAt  time.Time
}

// New validates metadata and builds an attachment for an already chosen key.
func New(kind document.Kind, recordID uuid.UUID, fileName, fileType string, fileSize int64, storageKey, fileURL string, maxSize int64) (*Attachment, error) {
	if !kind.IsValid() {
		return nil, shared.Invalid("unknown record kind")
	}
	if recordID == uuid.Nil {
		return nil, shared.Invalid("record id is required")
	}
	if err := ValidateFile(fileName, fileType, fileSize, maxSize); err != nil {
		return nil, err
	}
	if err := ValidateStorageKey(storageKey); err != nil {
		return nil, err
	}
	return &Attachment{
		ID:         uuid.New(),
		Kind:       kind,
		RecordID:   recordID,
		FileURL:    fileURL,
		FileName:   fileName,
		FileType:   fileType,
		FileSize:   fileSize,
		StorageKey: storageKey,
		CreatedAt:  time.Now(),
	}, nil
}

// ValidateFile checks name, content type and size before anything is uploaded.
func ValidateFile(fileName, contentType string, size, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}
	name := strings.TrimSpace(fileName)
	if name == "" {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot exceed 255 characters")
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name contains invalid characters")
	}
	if size <= 0 {
		return shared.NewDomainError("INVALID_FILE_SIZE", "File is empty")
	}
	if size > maxSize {
		return shared.NewDomainError("INVALID_FILE_SIZE",
			fmt.Sprintf("File size cannot exceed %d MB", maxSize/(1024*1024)))
	}
	if !AllowedContentTypes[normalizeContentType(contentType)] {
		return shared.NewDomainError("INVALID_CONTENT_TYPE", "Content type is not allowed: "+contentType)
	}
	return nil
}

// ValidateStorageKey rejects empty, absolute and traversing keys
func ValidateStorageKey(key string) error {
	if key == "" {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if len(key) > 512 {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot exceed 512 characters")
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key contains invalid path")
	}
	return nil
}

// Folder returns the storage folder for a kind. Invoices are split by their
// type, so invoiceType must be "buy" or "sell" for KindInvoice.
func Folder(kind document.Kind, invoiceType string) (string, error) {
	switch kind {
	case document.KindManufacturing:
		return FolderManufacturing, nil
	case document.KindMedicineConsumption:
		return FolderMedicineConsumption, nil
	case document.KindDailyReport:
		return FolderDailyReports, nil
	case document.KindInvoice:
		switch invoiceType {
		case "buy":
			return FolderInvoicesBuy, nil
		case "sell":
			return FolderInvoicesSell, nil
		}
		return "", shared.Invalid("invoice type must be buy or sell")
	}
	return "", shared.Invalid("unknown record kind")
}

// BuildStorageKey lays out <folder>/<recordID>/<uuid>-<name>
func BuildStorageKey(folder string, recordID uuid.UUID, fileName string) string {
	return path.Join(folder, recordID.String(), uuid.New().String()+"-"+SanitizeFileName(fileName))
}

// SanitizeFileName keeps letters, digits, dot, dash and underscore
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}

func normalizeContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
