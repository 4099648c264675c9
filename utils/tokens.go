package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/steamupuz/steamup_backend/models"
)

const (
	AccessTokenLifetime       = 60 * time.Minute
	RefreshTokenLifetime      = 24 * time.Hour
	RememberMeRefreshLifetime = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func signedToken(user *models.User, secret []byte, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"email":       user.Email,
		"is_verified": user.IsVerified,
		"is_staff":    user.IsStaff,
		"token_type":  tokenType,
		"iat":         now.Unix(),
		"exp":         now.Add(lifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func IssueAccessToken(user *models.User, secret []byte) (string, error) {
	return signedToken(user, secret, "access", AccessTokenLifetime)
}

// IssueTokenPair returns a fresh access/refresh pair. With rememberMe the
// refresh token lives 30 days instead of the default; the access token
// lifetime never changes.
func IssueTokenPair(user *models.User, secret []byte, rememberMe bool) (TokenPair, error) {
	access, err := IssueAccessToken(user, secret)
	if err != nil {
		return TokenPair{}, err
	}

	refreshLifetime := RefreshTokenLifetime
	if rememberMe {
		refreshLifetime = RememberMeRefreshLifetime
	}
	refresh, err := signedToken(user, secret, "refresh", refreshLifetime)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseToken validates the signature, expiry and token_type claim and
// returns the claims.
func ParseToken(tokenStr string, secret []byte, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
