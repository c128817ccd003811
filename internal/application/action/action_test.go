package action

import (
	"context"
	"errors"
	"testing"

	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

type recordingInvalidator struct {
	prefixes []string
	failOn   string
}

func (r *recordingInvalidator) InvalidatePrefix(_ context.Context, prefix string) error {
	r.prefixes = append(r.prefixes, prefix)
	if prefix == r.failOn {
		return errors.New("redis down")
	}
	return nil
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("success carries data", func(t *testing.T) {
		res := Run(ctx, "ok", func(context.Context) (int, error) { return 42, nil })
		assert.True(t, res.Success)
		assert.Equal(t, 42, res.Data)
		assert.Empty(t, res.Error)
	})

	t.Run("domain error keeps its message and code", func(t *testing.T) {
		res := Run(ctx, "missing", func(context.Context) (any, error) {
			return nil, shared.NotFound("invoice")
		})
		assert.False(t, res.Success)
		assert.Equal(t, "invoice not found", res.Error)
		assert.Equal(t, "NOT_FOUND", res.Code())
		assert.Nil(t, res.Data)
	})

	t.Run("plain error is masked", func(t *testing.T) {
		res := Run(ctx, "db", func(context.Context) (any, error) {
			return nil, errors.New("pq: connection refused")
		})
		assert.False(t, res.Success)
		assert.NotContains(t, res.Error, "pq:")
		assert.Equal(t, "INTERNAL_ERROR", res.Code())
	})

	t.Run("panic becomes a failed result", func(t *testing.T) {
		res := Run(ctx, "boom", func(context.Context) (any, error) {
			panic("nil map")
		})
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
	})
}

func TestInvalidate(t *testing.T) {
	inv := &recordingInvalidator{failOn: "/a"}
	Invalidate(context.Background(), inv, "/a", "/b")
	assert.Equal(t, []string{"/a", "/b"}, inv.prefixes)

	assert.NotPanics(t, func() { Invalidate(context.Background(), nil, "/x") })
}
