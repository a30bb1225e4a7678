// Package tracer provides a small tracing abstraction over OpenTelemetry.
//
// Callers depend on the Tracer and Span interfaces only, so the consent-flow
// reconciler and syncer can be traced in production and run with NoopTracer in tests.
//
// Implementations:
//   - NoopTracer: for tests
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err when non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a span; the returned context carries it to child operations.
	//
	// Example:
	//   ctx, span := tr.Start(ctx, tracer.SpanReconcile,
	//       tracer.Int(tracer.AttrCategories, len(categories)),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashDID returns a short SHA-256 digest of a DID so traces can be correlated
// without exporting the identifier itself.
func HashDID(did string) string {
	if did == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(did))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanReconcile         = "consentflow.reconcile"
	SpanReconcileCategory = "consentflow.reconcile.category"
	SpanSyncContracts     = "consentflow.sync"
	SpanSyncContract      = "consentflow.sync.contract"
)

// Attribute keys.
const (
	AttrCategory   = "category"
	AttrCategories = "categories"
	AttrURICount   = "uri_count"
	AttrTruncated  = "truncated"
	AttrOwnerDID   = "owner_did_hash"
	AttrTermsURI   = "terms_uri"
	AttrRemoved    = "removed"
	AttrContracts  = "contracts"
)
