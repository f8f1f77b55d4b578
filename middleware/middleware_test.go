package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voyara/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func withSecret(t *testing.T, secret []byte) {
	t.Helper()
	old := globals.JwtSecret
	globals.JwtSecret = secret
	t.Cleanup(func() { globals.JwtSecret = old })
}

func signSession(t *testing.T, secret []byte) string {
	t.Helper()
	claims := Claims{
		SessionID: "s1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func gated(called *bool) httprouter.Handle {
	return AdminOnly(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*called = true
	})
}

func TestAdminOnlyAcceptsValidSession(t *testing.T) {
	withSecret(t, []byte("test-secret"))

	called := false
	req := httptest.NewRequest("GET", "/api/admin/tours", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signSession(t, globals.JwtSecret)})
	w := httptest.NewRecorder()
	gated(&called)(w, req, nil)

	if !called {
		t.Errorf("handler not reached, status = %d", w.Code)
	}
}

func TestAdminOnlyRejectsMissingCookie(t *testing.T) {
	withSecret(t, []byte("test-secret"))

	called := false
	w := httptest.NewRecorder()
	gated(&called)(w, httptest.NewRequest("GET", "/api/admin/tours", nil), nil)

	if called || w.Code != http.StatusUnauthorized {
		t.Errorf("called = %v, status = %d", called, w.Code)
	}
}

func TestAdminOnlyRejectsWrongSecret(t *testing.T) {
	withSecret(t, []byte("test-secret"))

	called := false
	req := httptest.NewRequest("GET", "/api/admin/tours", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signSession(t, []byte("other-secret"))})
	w := httptest.NewRecorder()
	gated(&called)(w, req, nil)

	if called || w.Code != http.StatusUnauthorized {
		t.Errorf("called = %v, status = %d", called, w.Code)
	}
}

// With no configured secret the gate must fail closed: a token signed with an
// empty key would otherwise verify against the empty default.
func TestAdminOnlyRejectsWhenSecretUnset(t *testing.T) {
	withSecret(t, nil)

	called := false
	req := httptest.NewRequest("GET", "/api/admin/tours", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signSession(t, []byte{})})
	w := httptest.NewRecorder()
	gated(&called)(w, req, nil)

	if called || w.Code != http.StatusUnauthorized {
		t.Errorf("called = %v, status = %d", called, w.Code)
	}
}
