package subscribers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"voyara/db"
	"voyara/models"
	"voyara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// POST /api/subscribe
func Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email")
		return
	}

	count, err := db.SubscribersCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	if count > 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "already": true})
		return
	}

	sub := models.Subscriber{ID: primitive.NewObjectID(), Email: email, CreatedAt: time.Now()}
	if _, err := db.SubscribersCollection.InsertOne(ctx, sub); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

// GET /api/admin/subscribers
func AdminListSubscribers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	subs, err := utils.FindAndDecode[models.Subscriber](ctx, db.SubscribersCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve subscribers")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "subscribers": subs})
}

// DELETE /api/admin/subscribers/:id
func DeleteSubscriber(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid subscriber ID")
		return
	}

	res, err := db.SubscribersCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete subscriber")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Subscriber not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
