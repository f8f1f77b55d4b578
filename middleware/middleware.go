package middleware

import (
	"context"
	"net/http"

	"voyara/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const SessionCookie = "admin_session"

// Claims carried by the admin session cookie.
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// AdminOnly gates dashboard routes behind the http-only session cookie set
// at login. Public routes never pass through here.
func AdminOnly(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		// an empty HMAC key would still verify consistently, so refuse it
		// outright
		if len(globals.JwtSecret) == 0 {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Invalid session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.SessionIDKey, claims.SessionID)
		next(w, r.WithContext(ctx), ps)
	}
}
