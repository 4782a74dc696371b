package routes

import (
	"showsvc/auth"
	"showsvc/db"
	"showsvc/middleware"
	"showsvc/ratelim"
	"showsvc/shows"
	"showsvc/utils"

	"github.com/julienschmidt/httprouter"
)

func AddShowRoutes(router *httprouter.Router) {
	h := shows.NewHandler(shows.NewService(shows.NewMongoStore(db.ShowsCollection)))

	// GET /api/shows/listshows is served by the same wildcard route as the
	// name search; the handler tells them apart.
	router.GET("/api/shows/:name", ratelim.RateLimit(middleware.Authenticate(h.GetShows)))
	router.POST("/api/shows/createshow", ratelim.RateLimit(h.CreateShow))
	router.PATCH("/api/shows/:name", ratelim.RateLimit(middleware.Authenticate(middleware.RequireRoles(h.EditShow, "shows:update:any"))))
	router.DELETE("/api/shows/:name", ratelim.RateLimit(middleware.Authenticate(middleware.RequireRoles(h.DeleteShow, "shows:delete:any"))))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/csrf", ratelim.RateLimit(utils.CSRF))
}
