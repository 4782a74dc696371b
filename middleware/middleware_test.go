package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"showsvc/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, roles []string) string {
	t.Helper()
	claims := &Claims{
		Username: "tester",
		UserID:   "u1234567890",
		Role:     roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func okHandler(called *bool) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	var called bool
	h := Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/shows/listshows", nil)
	w := httptest.NewRecorder()
	h(w, req, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if called {
		t.Error("handler ran without a token")
	}
}

func TestAuthenticateBadToken(t *testing.T) {
	var called bool
	h := Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/shows/listshows", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	h(w, req, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if called {
		t.Error("handler ran with an invalid token")
	}
}

func TestAuthenticatePutsClaimsInContext(t *testing.T) {
	var gotUserID string
	var gotRoles []string
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		gotRoles, _ = r.Context().Value(globals.RoleKey).([]string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/shows/listshows", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, []string{"user"}))
	w := httptest.NewRecorder()
	h(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != "u1234567890" {
		t.Errorf("user id not in context, got %q", gotUserID)
	}
	if len(gotRoles) != 1 || gotRoles[0] != "user" {
		t.Errorf("roles not in context, got %v", gotRoles)
	}
}

func TestRequireRolesForbidsPlainUser(t *testing.T) {
	var called bool
	h := Authenticate(RequireRoles(okHandler(&called), "shows:update:any"))

	req := httptest.NewRequest(http.MethodPatch, "/api/shows/The%20Wire", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, []string{"user"}))
	w := httptest.NewRecorder()
	h(w, req, nil)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if called {
		t.Error("handler ran without the required permission")
	}
}

func TestRequireRolesAllowsAdmin(t *testing.T) {
	var called bool
	h := Authenticate(RequireRoles(okHandler(&called), "shows:delete:any"))

	req := httptest.NewRequest(http.MethodDelete, "/api/shows/The%20Wire", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, []string{"admin"}))
	w := httptest.NewRecorder()
	h(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !called {
		t.Error("handler did not run for admin")
	}
}
