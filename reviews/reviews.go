package reviews

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

// GET /api/reviews
// Public: only visible reviews, newest first.
func GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	reviews, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, bson.M{"isVisible": true}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "reviews": reviews})
}

// POST /api/reviews
// Public form; reviews start visible and can be hidden by the admin.
func AddReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil ||
		strings.TrimSpace(review.Name) == "" ||
		strings.TrimSpace(review.Text) == "" ||
		review.Rating < 1 || review.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}
	if !utils.Contains(models.ReviewAvatars, review.AvatarID) {
		review.AvatarID = "none"
	}

	review.ID = primitive.NewObjectID()
	review.IsVisible = true
	review.CreatedAt = time.Now()

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "review": review})
}

// GET /api/admin/reviews
// Admin moderation list includes hidden reviews.
func AdminListReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	reviews, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "reviews": reviews})
}

// POST /api/admin/reviews/:id/visibility
func ToggleVisibility(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var review models.Review
	if err := db.ReviewsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	_, err = db.ReviewsCollection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"isVisible": !review.IsVisible}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "isVisible": !review.IsVisible})
}

// DELETE /api/admin/reviews/:id
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	res, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
