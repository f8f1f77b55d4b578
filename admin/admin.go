package admin

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"voyara/globals"
	"voyara/middleware"
	"voyara/tours"
	"voyara/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

type loginRequest struct {
	Password string `json:"password"`
}

// POST /api/admin/login
// Verifies the dashboard password and sets the http-only session cookie.
// A fresh login re-arms the tour maintenance sweep.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing password")
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" || len(globals.JwtSecret) == 0 {
		utils.RespondWithError(w, http.StatusInternalServerError, "Admin access not configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	claims := middleware.Claims{
		SessionID: utils.GenerateRandomString(16),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})

	tours.ArmSweep()

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// POST /api/admin/logout
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/admin/session
// Lets the dashboard check whether its cookie is still valid.
func Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
