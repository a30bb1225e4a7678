// Package guardian gates actions taken from a child profile behind the guardian's PIN.
//
// A successful verification is remembered per guardian DID for a configurable TTL, so
// a guardian who just confirmed one action is not prompted again for the next.
package guardian

import (
	"context"
	"log/slog"
	"time"

	"walletgate/internal/consentflow/models"
	dErrors "walletgate/pkg/domain-errors"
)

//go:generate mockgen -source=guardian.go -destination=mocks/guardian_mock.go -package=mocks PinStore,VerificationStore

// DefaultTTL is how long a guardian verification stays valid.
const DefaultTTL = 5 * time.Minute

// ErrCancelled is returned when the gate cannot run the action and the caller should
// back out quietly: no guardian is linked, or no PIN was supplied.
var ErrCancelled = dErrors.New(dErrors.CodeCancelled, "guardian verification cancelled")

// ErrInvalidPIN is returned when the supplied PIN does not match.
var ErrInvalidPIN = dErrors.New(dErrors.CodeForbidden, "invalid guardian pin")

// PinStore holds guardian PINs.
type PinStore interface {
	HasPin(ctx context.Context, guardianDID string) (bool, error)
	VerifyPin(ctx context.Context, guardianDID, pin string) (bool, error)
}

// VerificationStore remembers recent guardian verifications. Entries expire after ttl.
type VerificationStore interface {
	MarkVerified(ctx context.Context, guardianDID string, ttl time.Duration) error
	IsVerified(ctx context.Context, guardianDID string) (bool, error)
	Clear(ctx context.Context, guardianDID string) error
}

// Session is the caller's view of one guarded action.
type Session struct {
	User models.User
	// PIN is the guardian's PIN as entered; empty when the guardian was not prompted yet.
	PIN string
	// Skip bypasses the gate entirely.
	Skip bool
}

// Gate runs actions on behalf of child profiles once their guardian is verified.
type Gate struct {
	pins          PinStore
	verifications VerificationStore
	ttl           time.Duration
	logger        *slog.Logger
	onVerified    func(ctx context.Context, guardianDID string)
}

// Option configures a Gate.
type Option func(*Gate)

// WithTTL sets how long a verification is cached. Values <= 0 keep DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(g *Gate) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// WithOnVerified registers a callback fired after a guardian is newly verified.
func WithOnVerified(fn func(ctx context.Context, guardianDID string)) Option {
	return func(g *Gate) {
		g.onVerified = fn
	}
}

func New(pins PinStore, verifications VerificationStore, opts ...Option) *Gate {
	g := &Gate{
		pins:          pins,
		verifications: verifications,
		ttl:           DefaultTTL,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// TTL returns the verification lifetime.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

// Guard runs action when the session is allowed to act.
//
// Adult, parent, and service profiles run immediately, as does any session with Skip.
// A child profile needs a linked guardian who is either still verified, has no PIN set,
// or supplies the right PIN now. action is never run when Guard returns a gate error.
func (g *Gate) Guard(ctx context.Context, session Session, action func(context.Context) error) error {
	if session.Skip || !session.User.IsChildProfile() {
		return action(ctx)
	}

	guardianDID := session.User.GuardianDID
	if guardianDID == "" {
		g.logger.WarnContext(ctx, "child profile has no guardian, cancelling action",
			"did", session.User.DID,
		)
		return ErrCancelled
	}

	verified, err := g.verifications.IsVerified(ctx, guardianDID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read guardian verification")
	}
	if verified {
		return action(ctx)
	}

	hasPin, err := g.pins.HasPin(ctx, guardianDID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up guardian pin")
	}
	if hasPin {
		if session.PIN == "" {
			return ErrCancelled
		}
		ok, err := g.pins.VerifyPin(ctx, guardianDID, session.PIN)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify guardian pin")
		}
		if !ok {
			g.logger.WarnContext(ctx, "guardian pin rejected", "guardian_did", guardianDID)
			return ErrInvalidPIN
		}
	}

	if err := g.verifications.MarkVerified(ctx, guardianDID, g.ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record guardian verification")
	}
	if g.onVerified != nil {
		g.onVerified(ctx, guardianDID)
	}
	return action(ctx)
}

// IsVerified reports whether the guardian verified within the TTL.
func (g *Gate) IsVerified(ctx context.Context, guardianDID string) (bool, error) {
	ok, err := g.verifications.IsVerified(ctx, guardianDID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read guardian verification")
	}
	return ok, nil
}

// ClearVerification forgets a guardian's verification so the next action prompts again.
func (g *Gate) ClearVerification(ctx context.Context, guardianDID string) error {
	if err := g.verifications.Clear(ctx, guardianDID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear guardian verification")
	}
	return nil
}
