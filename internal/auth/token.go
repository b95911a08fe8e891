// Package auth mints and verifies the access/refresh JWT pair used by the
// admin back-office.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Manager struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Mint issues a fresh access/refresh pair for a logged-in staff user.
func (m Manager) Mint(userID int64, username string, isSuperuser bool) (TokenPair, error) {
	now := time.Now()

	access, err := m.sign(jwt.MapClaims{
		"user_id":      userID,
		"username":     username,
		"is_superuser": isSuperuser,
		"token_type":   "access",
		"exp":          now.Add(m.AccessTTL).Unix(),
		"iat":          now.Unix(),
	})
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := m.sign(jwt.MapClaims{
		"user_id":    userID,
		"token_type": "refresh",
		"exp":        now.Add(m.RefreshTTL).Unix(),
		"iat":        now.Unix(),
	})
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (m Manager) sign(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
}

// Verify checks signature and expiry and returns the claims.
func (m Manager) Verify(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh accepts only refresh tokens.
func (m Manager) VerifyRefresh(token string) (jwt.MapClaims, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return nil, err
	}
	if t, _ := claims["token_type"].(string); t != "refresh" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
