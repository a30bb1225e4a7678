package jwttoken

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"walletgate/internal/consentflow/models"
	dErrors "walletgate/pkg/domain-errors"
)

// SessionClaims are the JWT claims of a wallet session token.
type SessionClaims struct {
	Name            string             `json:"name,omitempty"`
	Email           string             `json:"email,omitempty"`
	Image           string             `json:"picture,omitempty"`
	SwitchedProfile bool               `json:"switched_profile,omitempty"`
	ProfileType     models.ProfileType `json:"profile_type,omitempty"`
	GuardianDID     string             `json:"guardian_did,omitempty"`
	jwt.RegisteredClaims
}

// User rebuilds the wallet user the token was issued for. The subject is the holder DID.
func (c *SessionClaims) User() models.User {
	return models.User{
		DID:             c.Subject,
		Name:            c.Name,
		Email:           c.Email,
		Image:           c.Image,
		SwitchedProfile: c.SwitchedProfile,
		ProfileType:     c.ProfileType,
		GuardianDID:     c.GuardianDID,
	}
}

// JWTService handles JWT creation and validation
type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewJWTService(signingKey string, issuer string, audience string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// IssueToken signs a session token for user.
func (s *JWTService) IssueToken(user models.User) (string, error) {
	if user.DID == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "user did is required")
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Name:            user.Name,
		Email:           user.Email,
		Image:           user.Image,
		SwitchedProfile: user.SwitchedProfile,
		ProfileType:     user.ProfileType,
		GuardianDID:     user.GuardianDID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.DID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        hex.EncodeToString(b),
		},
	})
	return token.SignedString(s.signingKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	if claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token has no subject")
	}
	return claims, nil
}
