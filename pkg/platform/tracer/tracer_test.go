package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"walletgate/pkg/platform/tracer"
)

func TestNoopTracer(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanReconcile, tracer.Int(tracer.AttrCategories, 3))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Bool(tracer.AttrTruncated, true))
	span.AddEvent("page.full", tracer.Int64("count", 15))
	span.End(errors.New("boom"))
}

func TestOTelTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanSyncContract,
		tracer.String(tracer.AttrTermsURI, "lc:terms:1"),
		tracer.Duration("elapsed", 25*time.Millisecond),
		tracer.Attribute{Key: "ignored", Value: struct{}{}},
	)
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int(tracer.AttrRemoved, 2))
	span.AddEvent("synced")
	span.End(nil)
}

func TestHashDID(t *testing.T) {
	assert.Empty(t, tracer.HashDID(""))
	assert.Len(t, tracer.HashDID("did:web:app.example.com"), 16)
	assert.Equal(t, tracer.HashDID("did:key:a"), tracer.HashDID("did:key:a"))
	assert.NotEqual(t, tracer.HashDID("did:key:a"), tracer.HashDID("did:key:b"))
}
