package favorites

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"voyara/models"
	"voyara/rdx"
	"voyara/utils"

	"github.com/julienschmidt/httprouter"
)

func listFor(clientID string) *List {
	return NewList(RedisStore{Conn: rdx.Conn}, clientID)
}

// GET /api/favorites/:clientId
func GetFavorites(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items := listFor(ps.ByName("clientId")).Items(ctx)
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "favorites": items})
}

// POST /api/favorites/:clientId
// Toggles the posted tour card in the client's list.
func ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var item models.FavoriteItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item.ID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid favorite data")
		return
	}

	items, saved, err := listFor(ps.ByName("clientId")).Toggle(ctx, item)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save favorites")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "saved": saved, "favorites": items})
}

// DELETE /api/favorites/:clientId/:tourId
func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := listFor(ps.ByName("clientId")).Remove(ctx, ps.ByName("tourId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save favorites")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "favorites": items})
}
