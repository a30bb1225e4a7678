package guardian

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	dErrors "walletgate/pkg/domain-errors"
)

const minPinLength = 4

// BcryptPinStore keeps bcrypt hashes of guardian PINs in memory.
type BcryptPinStore struct {
	mu     sync.RWMutex
	hashes map[string][]byte
	cost   int
}

// NewBcryptPinStore creates a store hashing with cost; cost <= 0 uses bcrypt.DefaultCost.
func NewBcryptPinStore(cost int) *BcryptPinStore {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPinStore{hashes: make(map[string][]byte), cost: cost}
}

// SetPin stores or replaces the guardian's PIN.
func (s *BcryptPinStore) SetPin(_ context.Context, guardianDID, pin string) error {
	if guardianDID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "guardian did is required")
	}
	if len(pin) < minPinLength {
		return dErrors.New(dErrors.CodeValidation, "pin must be at least 4 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), s.cost)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash pin")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[guardianDID] = hash
	return nil
}

// RemovePin deletes the guardian's PIN; later guarded actions auto-verify.
func (s *BcryptPinStore) RemovePin(_ context.Context, guardianDID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hashes, guardianDID)
}

func (s *BcryptPinStore) HasPin(_ context.Context, guardianDID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hashes[guardianDID]
	return ok, nil
}

func (s *BcryptPinStore) VerifyPin(_ context.Context, guardianDID, pin string) (bool, error) {
	s.mu.RLock()
	hash, ok := s.hashes[guardianDID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword(hash, []byte(pin))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ PinStore = (*BcryptPinStore)(nil)
