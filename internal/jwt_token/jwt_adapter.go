package jwttoken

import (
	"walletgate/internal/platform/middleware"
)

func ToMiddlewareClaims(claims *SessionClaims) *middleware.JWTClaims {
	return &middleware.JWTClaims{
		User: claims.User(),
		JTI:  claims.ID,
	}
}

type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToMiddlewareClaims(claims), nil
}
