// Package session keeps the admin login state on the client side: the
// access/refresh token pair plus the user snapshot, persisted together and
// purged together. The guard decides once per protected-route render
// whether the stored session is still usable.
package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the token triple. The three values live and die as a unit; a
// partial session is never written.
type Session struct {
	AccessToken  string          `json:"access"`
	RefreshToken string          `json:"refresh"`
	User         json.RawMessage `json:"user,omitempty"`
}

func (s Session) Empty() bool { return s.AccessToken == "" }

type Status int

const (
	Unauthenticated Status = iota
	Authenticated
)

// Check evaluates the stored session. A missing, undecodable or expired
// token counts as not logged in: the store is purged and the caller is
// expected to redirect to the login route. The token signature is not
// verified here; only the server can do that, the client just reads exp.
func Check(store Store, now time.Time) (Status, Session) {
	sess, err := store.Load()
	if err != nil || sess.Empty() {
		return Unauthenticated, Session{}
	}

	exp, ok := decodeExpiry(sess.AccessToken)
	if !ok || !now.Before(exp) {
		_ = store.Clear()
		return Unauthenticated, Session{}
	}

	return Authenticated, sess
}

func decodeExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
