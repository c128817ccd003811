// Package action is the boundary every business operation runs through.
// An action never returns an error to its caller: failures are logged and
// folded into a Result with success=false.
package action

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/kdirani/farms/internal/domain/shared"
	"github.com/kdirani/farms/internal/infrastructure/logger"
	"github.com/kdirani/farms/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Result is the tagged outcome of an action
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`

	code string
}

// Code returns the domain error code of a failed result, empty on success
func (r Result) Code() string {
	return r.code
}

// Ok wraps data in a successful result
func Ok(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail converts err into a failed result. Domain errors keep their message;
// anything else is reported as an internal error.
func Fail(err error) Result {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return Result{Error: de.Message, code: de.Code}
	}
	return Result{Error: "an unexpected error occurred", code: shared.ErrorCode(err)}
}

// Recorder receives the outcome of every action
type Recorder interface {
	RecordAction(ctx context.Context, name string, success bool, code string, elapsed time.Duration)
}

type recorderHolder struct{ r Recorder }

var recorder atomic.Pointer[recorderHolder]

// SetRecorder installs r for all later actions. nil stops recording.
func SetRecorder(r Recorder) {
	if r == nil {
		recorder.Store(nil)
		return
	}
	recorder.Store(&recorderHolder{r: r})
}

// Run executes fn as the named action
func Run[T any](ctx context.Context, name string, fn func(ctx context.Context) (T, error)) (res Result) {
	ctx, span := telemetry.StartSpan(ctx, "action."+name, attribute.String("action", name))
	log := logger.FromContext(ctx)
	start := time.Now()

	var err error
	defer func() {
		if r := recover(); r != nil {
			log.Error("action panicked",
				zap.String("action", name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			err = fmt.Errorf("panic in %s: %v", name, r)
			res = Fail(err)
		}
		telemetry.EndSpan(span, err)
		if h := recorder.Load(); h != nil {
			h.r.RecordAction(ctx, name, res.Success, res.code, time.Since(start))
		}
	}()

	data, err := fn(ctx)
	if err != nil {
		log.Error("action failed", zap.String("action", name), zap.Error(err))
		return Fail(err)
	}
	return Ok(data)
}

// Invalidator drops cached pages by path prefix
type Invalidator interface {
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Invalidate drops every page under the given prefixes. Failures are logged
// and never fail the action.
func Invalidate(ctx context.Context, inv Invalidator, prefixes ...string) {
	if inv == nil {
		return
	}
	for _, p := range prefixes {
		if err := inv.InvalidatePrefix(ctx, p); err != nil {
			logger.FromContext(ctx).Warn("page invalidation failed",
				zap.String("prefix", p),
				zap.Error(err),
			)
		}
	}
}
