package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

const testCookie = "portal_session"

type stubStore struct {
	sessions map[string]domain.Session
	getErr   error
	cleared  []string
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]domain.Session)}
}

func (s *stubStore) Init(_ context.Context, sess domain.Session) (string, error) {
	id := "sess-1"
	s.sessions[id] = sess
	return id, nil
}

func (s *stubStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	s.cleared = append(s.cleared, id)
	return nil
}

func newContext(t *testing.T, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestSession_InjectsStateFromCookie(t *testing.T) {
	store := newStubStore()
	store.sessions["sess-1"] = domain.Session{Token: "tok", Role: domain.RoleAdmin, Email: "a@example.com"}
	c, _ := newContext(t, "sess-1")

	var seen *domain.Session
	handler := Session(store, testCookie)(func(c echo.Context) error {
		seen, _ = CurrentSession(c)
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == nil {
		t.Fatal("session not injected")
	}
	if seen.Role != domain.RoleAdmin || seen.Token != "tok" {
		t.Errorf("unexpected session: %+v", seen)
	}
	if got, _ := c.Get(CtxSessionID).(string); got != "sess-1" {
		t.Errorf("session id in context = %q, want sess-1", got)
	}
}

func TestSession_NoCookiePassesThroughUnauthenticated(t *testing.T) {
	store := newStubStore()
	c, _ := newContext(t, "")

	handler := Session(store, testCookie)(func(c echo.Context) error {
		if _, ok := CurrentSession(c); ok {
			t.Error("no session expected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSession_StaleCookieIsExpired(t *testing.T) {
	store := newStubStore()
	c, rec := newContext(t, "gone")

	handler := Session(store, testCookie)(func(c echo.Context) error {
		if _, ok := CurrentSession(c); ok {
			t.Error("stale cookie must not authenticate")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertCookieExpired(t, rec)
}

func TestSession_ExpiryDownstreamClearsEverything(t *testing.T) {
	store := newStubStore()
	store.sessions["sess-1"] = domain.Session{Token: "tok", Role: domain.RoleUser}
	c, rec := newContext(t, "sess-1")

	handler := Session(store, testCookie)(func(c echo.Context) error {
		return domain.ErrSessionExpired
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("error = %v, want ErrSessionExpired to propagate", err)
	}
	if len(store.cleared) != 1 || store.cleared[0] != "sess-1" {
		t.Errorf("store.Clear calls = %v, want [sess-1]", store.cleared)
	}
	assertCookieExpired(t, rec)
}

func TestSession_StoreFailureSurfaces(t *testing.T) {
	store := newStubStore()
	store.getErr = errors.New("redis down")
	c, _ := newContext(t, "sess-1")

	handler := Session(store, testCookie)(func(c echo.Context) error { return nil })

	if err := handler(c); err == nil {
		t.Fatal("expected the store failure to surface")
	}
}

func assertCookieExpired(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	res := rec.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == testCookie {
			if ck.MaxAge >= 0 || ck.Value != "" {
				t.Errorf("cookie not expired: MaxAge=%d Value=%q", ck.MaxAge, ck.Value)
			}
			return
		}
	}
	t.Error("no expiring Set-Cookie header found")
}
