package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"koskita/internal/domain/user"
	"koskita/internal/handler/api"
	"koskita/internal/handler/middleware"
	"koskita/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	kosHandler *api.KosHandler,
	favoriteHandler *api.FavoriteHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, kosHandler, favoriteHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	kosHandler *api.KosHandler,
	favoriteHandler *api.FavoriteHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		kosGroup := apiGroup.Group("/kos")
		{
			addRoutes(kosGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: kosHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: kosHandler.GetKos,
					Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByKos},
			})

			kosWrite := kosGroup.Group("")
			kosWrite.Use(authMiddleware.RequireAuth())
			addRoutes(kosWrite, []route{
				{Method: http.MethodPost, Path: "", Handler: kosHandler.CreateKos,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPut, Path: "/:id", Handler: kosHandler.UpdateKos,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: kosHandler.DeleteKos,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPost, Path: "/:id/photos", Handler: kosHandler.AddPhoto,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodDelete, Path: "/:id/photos/:photoId", Handler: kosHandler.RemovePhoto,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: reviewHandler.CreateReview,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleRenter)}},
				{Method: http.MethodPost, Path: "/:id/favorite", Handler: favoriteHandler.AddFavorite},
				{Method: http.MethodDelete, Path: "/:id/favorite", Handler: favoriteHandler.RemoveFavorite},
			})
		}

		myKos := apiGroup.Group("/my/kos")
		myKos.Use(authMiddleware.RequireAuth())
		addRoutes(myKos, []route{
			{Method: http.MethodGet, Path: "", Handler: kosHandler.ListOwn,
				Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleSeller)}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleRenter)}},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.UpdateStatus},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(authMiddleware.RequireAuth())
		addRoutes(favorites, []route{
			{Method: http.MethodGet, Path: "", Handler: favoriteHandler.ListFavorites},
		})

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		addRoutes(reviews, []route{
			{Method: http.MethodPut, Path: "/:id", Handler: reviewHandler.UpdateReview},
			{Method: http.MethodDelete, Path: "/:id", Handler: reviewHandler.DeleteReview},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
