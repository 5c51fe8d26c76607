package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, identity domain.Identity) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityContextKey, identity)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireAuth_Anonymous(t *testing.T) {
	rec, called := runGuard(t, RequireAuth(), domain.Identity{})
	if called {
		t.Fatalf("next should not run for anonymous request")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_AnyKindPasses(t *testing.T) {
	kinds := []domain.PrincipalKind{domain.KindUser, domain.KindExpert, domain.KindAdmin}
	for _, kind := range kinds {
		rec, called := runGuard(t, RequireAuth(), domain.Identity{ID: "p1", Kind: kind})
		if !called || rec.Code != http.StatusOK {
			t.Fatalf("expected %s to pass, got %d", kind, rec.Code)
		}
	}
}

func TestRequireKind_Match(t *testing.T) {
	rec, called := runGuard(t, RequireKind(domain.KindExpert), domain.Identity{ID: "e1", Kind: domain.KindExpert})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected expert to pass, got %d", rec.Code)
	}
}

func TestRequireKind_WrongKind(t *testing.T) {
	// Kinds are mutually exclusive in both directions.
	rec, called := runGuard(t, RequireKind(domain.KindExpert), domain.Identity{ID: "u1", Kind: domain.KindUser})
	if called {
		t.Fatalf("next should not run for wrong kind")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec, called = runGuard(t, RequireKind(domain.KindUser), domain.Identity{ID: "e1", Kind: domain.KindExpert})
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expert on user guard, got %d", rec.Code)
	}
}

func TestRequireKind_AdminNotUser(t *testing.T) {
	// An admin identity does not satisfy a plain user guard unless listed.
	rec, called := runGuard(t, RequireKind(domain.KindUser), domain.Identity{ID: "a1", Kind: domain.KindAdmin})
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireKind_Anonymous(t *testing.T) {
	rec, called := runGuard(t, RequireKind(domain.KindUser), domain.Identity{})
	if called {
		t.Fatalf("next should not run for anonymous request")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
