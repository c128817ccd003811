package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlobStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryBlobStore("http://files.local/")

	url, err := s.Upload(ctx, "manufacturing/abc/recipe.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "http://files.local/manufacturing/abc/recipe.txt", url)

	blob, ok := s.Get("manufacturing/abc/recipe.txt")
	require.True(t, ok)
	assert.Equal(t, "hello", string(blob.Data))
	assert.Equal(t, "text/plain", blob.ContentType)

	exists, err := s.Exists(ctx, "manufacturing/abc/recipe.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "manufacturing/abc/recipe.txt"))
	assert.Equal(t, 0, s.Len())

	// deleting again is not an error
	require.NoError(t, s.Delete(ctx, "manufacturing/abc/recipe.txt"))
}

func TestMemoryBlobStore_SizeMismatch(t *testing.T) {
	s := NewMemoryBlobStore("")
	_, err := s.Upload(context.Background(), "a/b", strings.NewReader("abc"), 10, "text/plain")
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryBlobStore_RejectsTraversal(t *testing.T) {
	s := NewMemoryBlobStore("")
	_, err := s.Upload(context.Background(), "../escape", strings.NewReader("x"), 1, "text/plain")
	require.Error(t, err)
}
