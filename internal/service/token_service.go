package service

import (
	"strconv"
	"time"

	"github.com/classpulse/backend/config"
	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 8 * time.Hour

// Claims is the bearer token payload: subject id, role, and the anonymous
// code for student identities.
type Claims struct {
	jwt.RegisteredClaims
	Role          model.Role `json:"role"`
	AnonymousCode string     `json:"anonymousCode,omitempty"`
}

type TokenService interface {
	Sign(user *model.User) (string, error)
	Verify(token string) (*Claims, error)
}

type tokenService struct {
	secret []byte
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{secret: []byte(cfg.JWTSecret)}
}

func (s *tokenService) Sign(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
		Role: user.Role,
	}
	if user.AnonymousCode != nil {
		claims.AnonymousCode = *user.AnonymousCode
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Authf("Unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.Wrap(apperr.Auth, "Invalid or expired token", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, apperr.Authf("Invalid or expired token")
	}
	return claims, nil
}

// UserID decodes the numeric subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, apperr.Wrap(apperr.Auth, "Invalid token subject", err)
	}
	return uint(id), nil
}
