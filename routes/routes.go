package routes

import (
	"net/http"

	"voyara/admin"
	"voyara/brochure"
	"voyara/favorites"
	"voyara/inquiries"
	"voyara/live"
	"voyara/media"
	"voyara/middleware"
	"voyara/posts"
	"voyara/ratelim"
	"voyara/reviews"
	"voyara/subscribers"
	"voyara/tours"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddTourRoutes(router *httprouter.Router) {
	router.GET("/api/tours", tours.GetTours)
	router.GET("/api/catalog", tours.GetCatalog)
	router.GET("/api/tours/:tourId", tours.GetTour)
	router.GET("/api/tours/:tourId/brochure.pdf", brochure.TourBrochure)

	router.GET("/api/admin/tours", middleware.AdminOnly(tours.AdminListTours))
	router.POST("/api/admin/tours", middleware.AdminOnly(tours.CreateTour))
	router.PUT("/api/admin/tours/:tourId", middleware.AdminOnly(tours.EditTour))
	router.DELETE("/api/admin/tours/:tourId", middleware.AdminOnly(tours.DeleteTour))
	router.POST("/api/admin/tours/:tourId/archive", middleware.AdminOnly(tours.ToggleArchive))
	router.POST("/api/admin/tours/:tourId/duplicate", middleware.AdminOnly(tours.DuplicateTour))
}

func AddPostRoutes(router *httprouter.Router) {
	router.GET("/api/posts", posts.GetAllPosts)
	router.GET("/api/posts/:slug", posts.GetPost)

	router.POST("/api/admin/posts", middleware.AdminOnly(posts.CreatePost))
	router.PUT("/api/admin/posts/:id", middleware.AdminOnly(posts.UpdatePost))
	router.DELETE("/api/admin/posts/:id", middleware.AdminOnly(posts.DeletePost))
	router.GET("/api/admin/posts/:id/sections", middleware.AdminOnly(posts.GetPostSections))
	router.PUT("/api/admin/posts/:id/sections", middleware.AdminOnly(posts.SavePostSections))
}

func AddReviewRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews", reviews.GetReviews)
	router.POST("/api/reviews", rl.Limit(reviews.AddReview))

	router.GET("/api/admin/reviews", middleware.AdminOnly(reviews.AdminListReviews))
	router.POST("/api/admin/reviews/:id/visibility", middleware.AdminOnly(reviews.ToggleVisibility))
	router.DELETE("/api/admin/reviews/:id", middleware.AdminOnly(reviews.DeleteReview))
}

func AddInquiryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/inquiries", rl.Limit(inquiries.CreateInquiry))

	router.GET("/api/admin/inquiries", middleware.AdminOnly(inquiries.AdminListInquiries))
	router.POST("/api/admin/inquiries/:id/contacted", middleware.AdminOnly(inquiries.MarkContacted))
	router.DELETE("/api/admin/inquiries/:id", middleware.AdminOnly(inquiries.DeleteInquiry))
}

func AddSubscriberRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/subscribe", rl.Limit(subscribers.Subscribe))

	router.GET("/api/admin/subscribers", middleware.AdminOnly(subscribers.AdminListSubscribers))
	router.DELETE("/api/admin/subscribers/:id", middleware.AdminOnly(subscribers.DeleteSubscriber))
}

func AddFavoriteRoutes(router *httprouter.Router) {
	router.GET("/api/favorites/:clientId", favorites.GetFavorites)
	router.POST("/api/favorites/:clientId", favorites.ToggleFavorite)
	router.DELETE("/api/favorites/:clientId/:tourId", favorites.RemoveFavorite)
}

func AddMediaRoutes(router *httprouter.Router) {
	router.POST("/api/admin/media", middleware.AdminOnly(media.Upload))
	router.GET("/api/admin/media", middleware.AdminOnly(media.ListMedia))
	router.DELETE("/api/admin/media/:fileId", middleware.AdminOnly(media.DeleteMedia))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/admin/login", rl.Limit(admin.Login))
	router.POST("/api/admin/logout", admin.Logout)
	router.GET("/api/admin/session", middleware.AdminOnly(admin.Session))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/:topic", live.WebSocketHandler(hub))
}
