package tours

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"voyara/catalog"
	"voyara/db"
	"voyara/globals"
	"voyara/models"
	"voyara/mq"
	"voyara/slug"
	"voyara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mongoStore struct{}

// tourKeyFilter targets a tour by its raw _id hex or by its human tourId.
// Drafts have no tourId yet, so admin mutations stay reachable through _id.
func tourKeyFilter(key string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(key); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"tourId": key}
}

func (mongoStore) UpdateTour(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	_, err := db.ToursCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	return err
}

// loadTours reads and normalizes tours matching the filter.
func loadTours(ctx context.Context, filter bson.M) ([]models.Tour, error) {
	tours, err := utils.FindAndDecode[models.Tour](ctx, db.ToursCollection, filter)
	if err != nil {
		return nil, err
	}
	for i := range tours {
		tours[i].Normalize()
	}
	return tours, nil
}

// GET /api/tours
func GetTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tours, err := loadTours(ctx, bson.M{"status": models.StatusPublic})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tours")
		return
	}

	// nearest departure first
	tours = catalog.Filter(tours, catalog.Params{})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "tours": tours})
}

// GET /api/tours/:tourId
func GetTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var tour models.Tour
	err := db.ToursCollection.FindOne(ctx, bson.M{"tourId": ps.ByName("tourId")}).Decode(&tour)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	tour.Normalize()

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "tour": tour})
}

// GET /api/catalog?q=&continent=&country=&month=&category=&sort=
// Runs the filter pipeline server-side and returns the filtered list plus
// the facets that feed the filter controls.
func GetCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tours, err := loadTours(ctx, bson.M{"status": models.StatusPublic})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tours")
		return
	}

	q := r.URL.Query()
	params := catalog.Params{
		Q:         q.Get("q"),
		Continent: q.Get("continent"),
		Country:   q.Get("country"),
		Month:     q.Get("month"),
		Category:  q.Get("category"),
		Sort:      q.Get("sort"),
	}

	filtered := catalog.Filter(tours, params)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"tours":      filtered,
		"entries":    catalog.WithYearMarkers(filtered),
		"continents": catalog.Continents(tours),
		"countries":  catalog.Countries(tours, params.Continent),
	})
}

// GET /api/admin/tours
// Loading the admin tour list is what triggers the maintenance sweep, once
// per admin session.
func AdminListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	tours, err := loadTours(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve tours")
		return
	}

	swept := 0
	if acquireSweep() {
		swept = Sweep(ctx, tours, mongoStore{})
		if swept > 0 {
			go mq.Emit(globals.Ctx, "tour-maintenance", models.Index{EntityType: "tour", Method: "SWEEP"})
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "tours": tours, "swept": swept})
}

// POST /api/admin/tours
func CreateTour(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var tour models.Tour
	if err := json.NewDecoder(r.Body).Decode(&tour); err != nil || tour.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tour data")
		return
	}

	tour.ID = primitive.NewObjectID()
	tour.Normalize()
	tour.Slug = slug.Make(tour.Title)
	if tour.GroupStatus == "" {
		tour.GroupStatus = models.GroupActive
	}
	tour.CreatedAt = time.Now()
	tour.UpdatedAt = tour.CreatedAt

	// tourId is derived once, when country and schedule are both known
	existing, err := loadTours(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create tour")
		return
	}
	tour.TourID = NextTourID(tour.Country, tour.Dates, existing)

	if _, err := db.ToursCollection.InsertOne(ctx, tour); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create tour")
		return
	}

	go mq.Emit(globals.Ctx, "tour-created", models.Index{EntityType: "tour", Method: "POST", EntityId: tour.TourID})
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "tour": tour})
}

// immutable or store-managed fields an edit may never touch
var protectedFields = []string{"_id", "id", "tourId", "createdAt"}

// PUT /api/admin/tours/:tourId
func EditTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	key := ps.ByName("tourId")
	filter := tourKeyFilter(key)

	var stored models.Tour
	if err := db.ToursCollection.FindOne(ctx, filter).Decode(&stored); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	stored.Normalize()

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	for _, f := range protectedFields {
		delete(patch, f)
	}
	patch["updatedAt"] = time.Now()

	// a draft receives its tourId on the first save that completes the
	// country and schedule
	assigned := ""
	if stored.TourID == "" {
		existing, err := loadTours(ctx, bson.M{})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update tour")
			return
		}
		if id := draftTourID(stored, patch, existing); id != "" {
			patch["tourId"] = id
			assigned = id
		}
	}

	if _, err := db.ToursCollection.UpdateOne(ctx, filter, bson.M{"$set": patch}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update tour")
		return
	}

	go mq.Emit(globals.Ctx, "tour-edited", models.Index{EntityType: "tour", Method: "PUT", EntityId: key})
	resp := map[string]any{"ok": true}
	if assigned != "" {
		resp["tourId"] = assigned
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/admin/tours/:tourId
func DeleteTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	key := ps.ByName("tourId")

	res, err := db.ToursCollection.DeleteOne(ctx, tourKeyFilter(key))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete tour")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}

	go mq.Emit(globals.Ctx, "tour-deleted", models.Index{EntityType: "tour", Method: "DELETE", EntityId: key})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// POST /api/admin/tours/:tourId/archive
// Toggles between archived and public.
func ToggleArchive(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	key := ps.ByName("tourId")
	filter := tourKeyFilter(key)

	var tour models.Tour
	if err := db.ToursCollection.FindOne(ctx, filter).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}

	status := models.StatusArchived
	if tour.Status == models.StatusArchived {
		status = models.StatusPublic
	}

	_, err := db.ToursCollection.UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update tour")
		return
	}

	go mq.Emit(globals.Ctx, "tour-edited", models.Index{EntityType: "tour", Method: "PUT", EntityId: key})
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "status": status})
}

// POST /api/admin/tours/:tourId/duplicate
// Clones a tour into the archive with a freshly derived tourId, as a
// template for a future season.
func DuplicateTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	key := ps.ByName("tourId")

	var tour models.Tour
	if err := db.ToursCollection.FindOne(ctx, tourKeyFilter(key)).Decode(&tour); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	tour.Normalize()

	tour.ID = primitive.NewObjectID()
	tour.Status = models.StatusArchived
	tour.CreatedAt = time.Now()
	tour.UpdatedAt = tour.CreatedAt

	existing, err := loadTours(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to duplicate tour")
		return
	}
	tour.TourID = NextTourID(tour.Country, tour.Dates, existing)

	if _, err := db.ToursCollection.InsertOne(ctx, tour); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to duplicate tour")
		return
	}

	go mq.Emit(globals.Ctx, "tour-created", models.Index{EntityType: "tour", Method: "POST", EntityId: tour.TourID})
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "tour": tour})
}
