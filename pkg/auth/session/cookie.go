package session

import (
	"net/http"
	"time"

	"github.com/carebridge/eldercare-backend/pkg/auth"
	"github.com/carebridge/eldercare-backend/pkg/config"
)

// Manager reads and writes the signed session cookie. The cookie payload is
// the entire session: nothing is stored server-side.
type Manager struct {
	cfg config.SessionConfig
}

func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{cfg: cfg}
}

// Establish mints a session for the payload and sets the cookie.
func (m *Manager) Establish(w http.ResponseWriter, payload auth.SessionPayload) error {
	token, err := auth.MintSessionToken(m.cfg, time.Now(), payload)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl := m.cfg.TTL(); ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(w, cookie)
	return nil
}

// Current returns the claims carried by the request's session cookie, or nil
// when there is no valid session.
func (m *Manager) Current(r *http.Request) *auth.SessionClaims {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := auth.ParseSessionToken(m.cfg, cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
