package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kdirani/farms/internal/domain/attachment"
)

// Blob is an object held by MemoryBlobStore
type Blob struct {
	Data        []byte
	ContentType string
}

// MemoryBlobStore keeps blobs in process memory. It backs local development
// and tests.
type MemoryBlobStore struct {
	mu      sync.RWMutex
	blobs   map[string]Blob
	baseURL string
}

// NewMemoryBlobStore creates an empty store serving URLs under baseURL
func NewMemoryBlobStore(baseURL string) *MemoryBlobStore {
	if baseURL == "" {
		baseURL = "memory://blobs"
	}
	return &MemoryBlobStore{
		blobs:   make(map[string]Blob),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload stores the body under key
func (m *MemoryBlobStore) Upload(_ context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if err := attachment.ValidateStorageKey(key); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, body)
	if err != nil {
		return "", fmt.Errorf("failed to read blob: %w", err)
	}
	if size >= 0 && n != size {
		return "", fmt.Errorf("blob size mismatch: declared %d, read %d", size, n)
	}

	m.mu.Lock()
	m.blobs[key] = Blob{Data: buf.Bytes(), ContentType: contentType}
	m.mu.Unlock()
	return m.baseURL + "/" + key, nil
}

// Delete removes the blob at key
func (m *MemoryBlobStore) Delete(_ context.Context, key string) error {
	if err := attachment.ValidateStorageKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.blobs, key)
	m.mu.Unlock()
	return nil
}

// Exists reports whether key is stored
func (m *MemoryBlobStore) Exists(_ context.Context, key string) (bool, error) {
	if err := attachment.ValidateStorageKey(key); err != nil {
		return false, err
	}
	m.mu.RLock()
	_, ok := m.blobs[key]
	m.mu.RUnlock()
	return ok, nil
}

// Get returns a stored blob
func (m *MemoryBlobStore) Get(key string) (Blob, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[key]
	return b, ok
}

// Len returns the number of stored blobs
func (m *MemoryBlobStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
