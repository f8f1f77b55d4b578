package posts

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
	"voyara/sections"
	"voyara/slug"
	"voyara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/posts
// Content is stripped from list responses; the article page fetches it by
// slug.
func GetAllPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	posts, err := utils.FindAndDecode[models.Post](ctx, db.PostsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	for i := range posts {
		posts[i].Content = ""
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "posts": posts})
}

// GET /api/posts/:slug
func GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.Post
	if err := db.PostsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "post": post})
}

// POST /api/admin/posts
func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil || strings.TrimSpace(post.Title) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post data")
		return
	}

	post.ID = primitive.NewObjectID()
	post.Slug = slug.Make(post.Title)
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	if _, err := db.PostsCollection.InsertOne(ctx, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	go mq.Emit(globals.Ctx, "post-created", models.Index{EntityType: "post", Method: "POST", EntityId: post.Slug})
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "post": post})
}

// PUT /api/admin/posts/:id
func UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	delete(patch, "_id")
	delete(patch, "id")
	if title, ok := patch["title"].(string); ok && strings.TrimSpace(title) != "" {
		patch["slug"] = slug.Make(title)
	}
	patch["updatedAt"] = time.Now()

	res, err := db.PostsCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": patch})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/admin/posts/:id
func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	res, err := db.PostsCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/admin/posts/:id/sections
// Decomposes the stored HTML into the blocks the editor edits.
func GetPostSections(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var post models.Post
	if err := db.PostsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "sections": sections.Parse(post.Content)})
}

// PUT /api/admin/posts/:id/sections
// Recomposes the blocks into content HTML and saves it.
func SavePostSections(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var secs []sections.Section
	if err := json.NewDecoder(r.Body).Decode(&secs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid sections data")
		return
	}

	content := sections.Compose(secs)
	res, err := db.PostsCollection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save post")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "content": content})
}
