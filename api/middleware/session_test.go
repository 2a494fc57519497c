package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carebridge/eldercare-backend/pkg/auth"
	"github.com/carebridge/eldercare-backend/pkg/auth/session"
	"github.com/carebridge/eldercare-backend/pkg/config"
	"github.com/carebridge/eldercare-backend/pkg/enums"
)

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "eldercare_session",
		Issuer:     "eldercare",
		TTLMinutes: 60,
	}
}

func signedCookie(t *testing.T, cfg config.SessionConfig, payload auth.SessionPayload) *http.Cookie {
	t.Helper()
	token, err := auth.MintSessionToken(cfg, time.Now(), payload)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return &http.Cookie{Name: cfg.CookieName, Value: token}
}

func TestRequireSession_RedirectsAnonymous(t *testing.T) {
	mgr := session.NewManager(sessionConfig())
	handler := RequireSession(mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for anonymous request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/elder_dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
}

func TestRequireSession_SeedsContext(t *testing.T) {
	cfg := sessionConfig()
	mgr := session.NewManager(cfg)

	var gotUserID int64
	var gotRole enums.Role
	handler := RequireSession(mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(signedCookie(t, cfg, auth.SessionPayload{UserID: 7, Role: enums.RoleElder, Name: "Edna Elder"}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 7 {
		t.Fatalf("expected user id 7, got %d", gotUserID)
	}
	if gotRole != enums.RoleElder {
		t.Fatalf("expected elder role, got %s", gotRole)
	}
}

func TestRequireSession_RejectsTamperedToken(t *testing.T) {
	cfg := sessionConfig()
	mgr := session.NewManager(cfg)
	handler := RequireSession(mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for a tampered token")
	}))

	cookie := signedCookie(t, cfg, auth.SessionPayload{UserID: 7, Role: enums.RoleElder, Name: "Edna Elder"})
	cookie.Value += "tampered"

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestRequireRole_MismatchRedirects(t *testing.T) {
	cfg := sessionConfig()
	mgr := session.NewManager(cfg)
	handler := RequireSession(mgr, nil)(RequireRole(enums.RoleGuardian, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for wrong role")
	})))

	req := httptest.NewRequest(http.MethodGet, "/guardian_dashboard", nil)
	req.AddCookie(signedCookie(t, cfg, auth.SessionPayload{UserID: 7, Role: enums.RoleElder, Name: "Edna Elder"}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
}

func TestRequireRole_MatchPasses(t *testing.T) {
	cfg := sessionConfig()
	mgr := session.NewManager(cfg)
	handler := RequireSession(mgr, nil)(RequireRole(enums.RoleGuardian, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/guardian_dashboard", nil)
	req.AddCookie(signedCookie(t, cfg, auth.SessionPayload{UserID: 3, Role: enums.RoleGuardian, Name: "Gwen Guardian"}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
