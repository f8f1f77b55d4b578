package media

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voyara/db"
	"voyara/models"
	"voyara/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const uploadDir = "./static/uploads"

var supportedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
}

// POST /api/admin/media
// Stores the uploaded file under a uuid name and, for images, a 480px
// thumbnail next to it. The caller only consumes the returned URLs.
func Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !supportedTypes[mimeType] {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	fileID := uuid.New().String()
	filename := fileID + strings.ToLower(filepath.Ext(header.Filename))
	dstPath := filepath.Join(uploadDir, filename)

	doc := models.MediaFile{
		ID:        primitive.NewObjectID(),
		FileID:    fileID,
		Name:      header.Filename,
		URL:       "/static/uploads/" + filename,
		MimeType:  mimeType,
		Size:      header.Size,
		CreatedAt: time.Now(),
	}

	if strings.HasPrefix(mimeType, "image/") {
		img, err := imaging.Decode(file)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Unreadable image")
			return
		}
		if err := imaging.Save(img, dstPath); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store file")
			return
		}

		thumb := imaging.Fit(img, 480, 480, imaging.Lanczos)
		thumbName := fileID + "_thumb.jpg"
		if err := imaging.Save(thumb, filepath.Join(uploadDir, thumbName)); err == nil {
			doc.ThumbURL = "/static/uploads/" + thumbName
		}
	} else {
		out, err := os.Create(dstPath)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store file")
			return
		}
		defer out.Close()
		if _, err := out.ReadFrom(file); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store file")
			return
		}
	}

	if _, err := db.MediaCollection.InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record upload")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "media": doc})
}

// GET /api/admin/media
func ListMedia(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	files, err := utils.FindAndDecode[models.MediaFile](ctx, db.MediaCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve media")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "media": files})
}

// DELETE /api/admin/media/:fileId
func DeleteMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	fileID := ps.ByName("fileId")

	var doc models.MediaFile
	if err := db.MediaCollection.FindOne(ctx, bson.M{"fileId": fileID}).Decode(&doc); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "File not found")
		return
	}

	if _, err := db.MediaCollection.DeleteOne(ctx, bson.M{"fileId": fileID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	// best effort; stale files on disk are harmless
	os.Remove(filepath.Join(uploadDir, filepath.Base(doc.URL)))
	if doc.ThumbURL != "" {
		os.Remove(filepath.Join(uploadDir, filepath.Base(doc.ThumbURL)))
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
