// Package service contains the business logic for the dictionary service.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum accepted HMAC secret size in bytes.
const minSecretLength = 32

// Claims represents session token claims.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines session token operations.
type TokenService interface {
	Generate(userID string) (string, error)
	Validate(tokenString string) (*Claims, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new TokenService instance. The secret must be at
// least 32 bytes.
func NewTokenService(secret string, expiry time.Duration) (TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, errors.New("jwt secret must be at least 32 bytes")
	}
	return &tokenService{secret: []byte(secret), expiry: expiry}, nil
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}

func (s *tokenService) Generate(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
