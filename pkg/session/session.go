// Package session holds the Strava token carried by the signed session cookie
// and the helpers that move it in and out of a gin session.
package session

import (
	"time"

	"github.com/gin-contrib/sessions"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyExpiresAt    = "expires_at"
)

// Token is the OAuth2 credential for one browser session. It lives only in
// the session cookie; there is no server-side persistence.
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}

// Expired reports whether the access token is past its expiry at the given
// wall-clock time.
func (t *Token) Expired(now time.Time) bool {
	return t.ExpiresAt < now.Unix()
}

// TokenFrom reads the token out of the session. The second return is false
// when no complete token is stored.
func TokenFrom(s sessions.Session) (*Token, bool) {
	access, ok := s.Get(keyAccessToken).(string)
	if !ok || access == "" {
		return nil, false
	}
	refresh, ok := s.Get(keyRefreshToken).(string)
	if !ok {
		return nil, false
	}
	expiresAt, ok := s.Get(keyExpiresAt).(int64)
	if !ok {
		return nil, false
	}
	return &Token{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, true
}

// SaveToken replaces the session token and writes the cookie.
func SaveToken(s sessions.Session, t *Token) error {
	s.Set(keyAccessToken, t.AccessToken)
	s.Set(keyRefreshToken, t.RefreshToken)
	s.Set(keyExpiresAt, t.ExpiresAt)
	return s.Save()
}

// Clear drops all session state and writes the emptied cookie.
func Clear(s sessions.Session) error {
	s.Clear()
	return s.Save()
}
