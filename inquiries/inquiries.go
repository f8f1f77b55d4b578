package inquiries

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"voyara/db"
	"voyara/globals"
	"voyara/models"
	"voyara/mq"
	"voyara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/inquiries
// Public contact/booking form.
func CreateInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var inquiry models.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil ||
		strings.TrimSpace(inquiry.ClientName) == "" ||
		!strings.Contains(inquiry.ClientEmail, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid inquiry data")
		return
	}

	inquiry.ID = primitive.NewObjectID()
	inquiry.Status = models.InquiryNew
	inquiry.CreatedAt = time.Now()

	if _, err := db.InquiriesCollection.InsertOne(ctx, inquiry); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save inquiry")
		return
	}

	go mq.Emit(globals.Ctx, "inquiry-created", models.Index{EntityType: "inquiry", Method: "POST", EntityId: inquiry.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

// GET /api/admin/inquiries
func AdminListInquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	inquiries, err := utils.FindAndDecode[models.Inquiry](ctx, db.InquiriesCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve inquiries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "inquiries": inquiries})
}

// POST /api/admin/inquiries/:id/contacted
func MarkContacted(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid inquiry ID")
		return
	}

	res, err := db.InquiriesCollection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": models.InquiryContacted}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update inquiry")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Inquiry not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/admin/inquiries/:id
func DeleteInquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid inquiry ID")
		return
	}

	res, err := db.InquiriesCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete inquiry")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Inquiry not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
