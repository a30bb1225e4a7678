package guardian

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"walletgate/internal/consentflow/models"
	"walletgate/internal/guardian/mocks"
	"walletgate/internal/guardian/store"
	dErrors "walletgate/pkg/domain-errors"
)

const (
	childDID    = "did:key:z6MkChild"
	guardianDID = "did:key:z6MkParent"
)

type GateSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	pins          *mocks.MockPinStore
	verifications *mocks.MockVerificationStore
	verifiedCalls []string
	gate          *Gate
	ran           int
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

func (s *GateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.pins = mocks.NewMockPinStore(s.ctrl)
	s.verifications = mocks.NewMockVerificationStore(s.ctrl)
	s.verifiedCalls = nil
	s.ran = 0
	s.gate = New(s.pins, s.verifications,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithOnVerified(func(_ context.Context, did string) { s.verifiedCalls = append(s.verifiedCalls, did) }),
	)
}

func (s *GateSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GateSuite) action(context.Context) error {
	s.ran++
	return nil
}

func child() models.User {
	return models.User{DID: childDID, SwitchedProfile: true, ProfileType: models.ProfileTypeChild, GuardianDID: guardianDID}
}

func (s *GateSuite) TestNonChildProfilesRunImmediately() {
	users := []models.User{
		{DID: "did:key:adult"},
		{DID: "did:key:parent", SwitchedProfile: true, ProfileType: models.ProfileTypeParent},
		{DID: "did:key:service", SwitchedProfile: true, ProfileType: models.ProfileTypeService},
		{DID: "did:key:unswitched", ProfileType: models.ProfileTypeChild},
	}
	for _, u := range users {
		s.Require().NoError(s.gate.Guard(context.Background(), Session{User: u}, s.action))
	}
	s.Equal(len(users), s.ran)
}

func (s *GateSuite) TestSkipBypassesGate() {
	s.Require().NoError(s.gate.Guard(context.Background(), Session{User: child(), Skip: true}, s.action))
	s.Equal(1, s.ran)
}

func (s *GateSuite) TestMissingGuardianCancels() {
	u := child()
	u.GuardianDID = ""

	err := s.gate.Guard(context.Background(), Session{User: u, PIN: "1234"}, s.action)
	s.ErrorIs(err, ErrCancelled)
	s.True(dErrors.HasCode(err, dErrors.CodeCancelled))
	s.Zero(s.ran)
}

func (s *GateSuite) TestCachedVerificationRunsAction() {
	s.verifications.EXPECT().IsVerified(gomock.Any(), guardianDID).Return(true, nil)

	s.Require().NoError(s.gate.Guard(context.Background(), Session{User: child()}, s.action))
	s.Equal(1, s.ran)
	s.Empty(s.verifiedCalls)
}

func (s *GateSuite) TestGuardianWithoutPinIsAutoVerified() {
	s.verifications.EXPECT().IsVerified(gomock.Any(), guardianDID).Return(false, nil)
	s.pins.EXPECT().HasPin(gomock.Any(), guardianDID).Return(false, nil)
	s.verifications.EXPECT().MarkVerified(gomock.Any(), guardianDID, DefaultTTL).Return(nil)

	s.Require().NoError(s.gate.Guard(context.Background(), Session{User: child()}, s.action))
	s.Equal(1, s.ran)
	s.Equal([]string{guardianDID}, s.verifiedCalls)
}

func (s *GateSuite) TestMissingPinCancels() {
	s.verifications.EXPECT().IsVerified(gomock.Any(), guardianDID).Return(false, nil)
	s.pins.EXPECT().HasPin(gomock.Any(), guardianDID).Return(true, nil)

	err := s.gate.Guard(context.Background(), Session{User: child()}, s.action)
	s.ErrorIs(err, ErrCancelled)
	s.Zero(s.ran)
}

func (s *GateSuite) TestWrongPinForbidden() {
	s.verifications.EXPECT().IsVerified(gomock.Any(), guardianDID).Return(false, nil)
	s.pins.EXPECT().HasPin(gomock.Any(), guardianDID).Return(true, nil)
	s.pins.EXPECT().VerifyPin(gomock.Any(), guardianDID, "0000").Return(false, nil)

	err := s.gate.Guard(context.Background(), Session{User: child(), PIN: "0000"}, s.action)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	s.Zero(s.ran)
	s.Empty(s.verifiedCalls)
}

func (s *GateSuite) TestCorrectPinVerifiesThenRuns() {
	gate := New(s.pins, s.verifications, WithTTL(10*time.Minute))
	s.Equal(10*time.Minute, gate.TTL())

	gomock.InOrder(
		s.verifications.EXPECT().IsVerified(gomock.Any(), guardianDID).Return(false, nil),
		s.pins.EXPECT().HasPin(gomock.Any(), guardianDID).Return(true, nil),
		s.pins.EXPECT().VerifyPin(gomock.Any(), guardianDID, "1234").Return(true, nil),
		s.verifications.EXPECT().MarkVerified(gomock.Any(), guardianDID, 10*time.Minute).Return(nil),
	)

	s.Require().NoError(gate.Guard(context.Background(), Session{User: child(), PIN: "1234"}, s.action))
	s.Equal(1, s.ran)
}

func (s *GateSuite) TestStoreFailureIsInternal() {
	s.verifications.EXPECT().IsVerified(gomock.Any(), guardianDID).Return(false, errors.New("redis down"))

	err := s.gate.Guard(context.Background(), Session{User: child(), PIN: "1234"}, s.action)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Zero(s.ran)
}

func (s *GateSuite) TestActionErrorIsReturned() {
	boom := errors.New("boom")
	err := s.gate.Guard(context.Background(), Session{User: models.User{DID: "did:key:adult"}}, func(context.Context) error {
		return boom
	})
	s.ErrorIs(err, boom)
}

// TestVerificationExpiresAfterTTL runs the gate against the real memory cache and bcrypt
// PIN store: a verified guardian is not prompted again until the TTL passes or the
// verification is cleared.
func TestVerificationExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := store.NewMemory(store.WithClock(func() time.Time { return now }))
	pins := NewBcryptPinStore(4)
	if err := pins.SetPin(ctx, guardianDID, "2468"); err != nil {
		t.Fatal(err)
	}
	gate := New(pins, cache, WithTTL(time.Minute))
	noop := func(context.Context) error { return nil }

	if err := gate.Guard(ctx, Session{User: child(), PIN: "2468"}, noop); err != nil {
		t.Fatalf("first guard: %v", err)
	}

	now = now.Add(30 * time.Second)
	if err := gate.Guard(ctx, Session{User: child()}, noop); err != nil {
		t.Fatalf("within ttl: %v", err)
	}

	now = now.Add(31 * time.Second)
	if err := gate.Guard(ctx, Session{User: child()}, noop); !errors.Is(err, ErrCancelled) {
		t.Fatalf("after ttl: want cancelled, got %v", err)
	}

	if err := gate.Guard(ctx, Session{User: child(), PIN: "2468"}, noop); err != nil {
		t.Fatalf("re-verify: %v", err)
	}
	if err := gate.ClearVerification(ctx, guardianDID); err != nil {
		t.Fatal(err)
	}
	verified, err := gate.IsVerified(ctx, guardianDID)
	if err != nil || verified {
		t.Fatalf("after clear: verified=%v err=%v", verified, err)
	}
}
