package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewS3BlobStore_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr string
	}{
		{"nil config", nil, "storage configuration is required"},
		{"missing bucket", &config.StorageConfig{AccessKeyID: "k", SecretAccessKey: "s"}, "storage bucket is required"},
		{"missing access key", &config.StorageConfig{Bucket: "b", SecretAccessKey: "s"}, "storage access key is required"},
		{"missing secret", &config.StorageConfig{Bucket: "b", AccessKeyID: "k"}, "storage secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewS3BlobStore(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestS3BlobStore_URL(t *testing.T) {
	t.Run("aws default", func(t *testing.T) {
		s, err := NewS3BlobStore(&config.StorageConfig{
			Bucket: "farm-files", Region: "eu-central-1", AccessKeyID: "k", SecretAccessKey: "s",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://farm-files.s3.eu-central-1.amazonaws.com/invoices/buy/x.pdf", s.URL("invoices/buy/x.pdf"))
		assert.Equal(t, "farm-files", s.Bucket())
	})

	t.Run("custom endpoint", func(t *testing.T) {
		s, err := NewS3BlobStore(&config.StorageConfig{
			Bucket: "farm-files", Endpoint: "minio.local:9000", AccessKeyID: "k", SecretAccessKey: "s", UsePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local:9000/farm-files/a/b.png", s.URL("a/b.png"))
	})

	t.Run("public base url wins", func(t *testing.T) {
		s, err := NewS3BlobStore(&config.StorageConfig{
			Bucket: "b", AccessKeyID: "k", SecretAccessKey: "s", PublicBaseURL: "https://cdn.example.com/",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/k.txt", s.URL("k.txt"))
	})
}

func TestS3BlobStore_RejectsUnsafeKeys(t *testing.T) {
	s, err := NewS3BlobStore(&config.StorageConfig{Bucket: "b", AccessKeyID: "k", SecretAccessKey: "s"})
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "/etc/passwd", "daily-reports/../secrets"} {
		_, err := s.Upload(ctx, key, strings.NewReader("x"), 1, "text/plain")
		assert.Error(t, err, key)
		assert.Error(t, s.Delete(ctx, key), key)
		_, err = s.Exists(ctx, key)
		assert.Error(t, err, key)
	}
}

// fakeS3 is a path-style S3 endpoint that keeps objects in memory
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	methods []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.methods = append(f.methods, r.Method)
	path := strings.TrimPrefix(r.URL.Path, "/")
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if _, ok := f.objects[path]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3BlobStore_RoundTrip(t *testing.T) {
	backend := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(backend)
	defer srv.Close()

	s, err := NewS3BlobStore(&config.StorageConfig{
		Bucket:          "farm-files",
		Endpoint:        srv.URL,
		AccessKeyID:     "k",
		SecretAccessKey: "s",
		UsePathStyle:    true,
	}, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	ctx := context.Background()
	key := "daily-reports/2f6c/report.pdf"
	data := []byte("%PDF-1.4 test")

	url, err := s.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/farm-files/"+key, url)

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, key))

	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}
