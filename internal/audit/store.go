package audit

import (
	"context"

	dErrors "walletgate/pkg/domain-errors"
)

// DefaultRetention caps how many events a store keeps per holder.
const DefaultRetention = 500

var (
	// ErrNotFound keeps storage-specific 404s consistent across implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")
)

// Store persists events per holder in append order. Once a holder exceeds the
// store's retention the oldest events are dropped.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByHolder(ctx context.Context, holderDID string) ([]Event, error)
}
