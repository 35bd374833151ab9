package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// tokenClaims is the JWT payload: the user id doubles as the subject.
type tokenClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret string
	ttl    time.Duration
}

var _ ports.TokenService = (*TokenService)(nil)

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

func (s *TokenService) Generate(userID uint64) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *TokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}
