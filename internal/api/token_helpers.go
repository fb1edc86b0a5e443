package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vitalsboard/vitals/internal/models"
)

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildToken(user *models.User, now time.Time) (string, error) {
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ID:        uuid.NewString(),
			Issuer:    handler.jwt.Issuer,
			Audience:  jwt.ClaimStrings{handler.jwt.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.jwt.Expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(handler.jwt.Secret))
}

func (handler *Handler) parseToken(rawToken string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(handler.jwt.Secret), nil
	}, jwt.WithIssuer(handler.jwt.Issuer), jwt.WithAudience(handler.jwt.Audience))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

func (claims *sessionClaims) userID() (uint, error) {
	parsed, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid subject claim")
	}
	return uint(parsed), nil
}
