package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", "walker", 1)

	assert.Same(t, logger, FromContext(ctx))
	assert.Contains(t, buf.String(), "walker=1")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, logger := With(WithLogger(context.Background(), base), "puzzle", "sample")
	FromContext(ctx).Info("solved")

	assert.Same(t, logger, FromContext(ctx))
	assert.Contains(t, buf.String(), "puzzle=sample")
	assert.Contains(t, buf.String(), "msg=solved")
}
