package http

import (
	"net/http"

	"github.com/gdugdh24/skillswap-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/skillswap-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	browseHandler   *handler.BrowseHandler
	requestHandler  *handler.RequestHandler
	bookmarkHandler *handler.BookmarkHandler
	settingsHandler *handler.SettingsHandler
	authMiddleware  *middleware.AuthMiddleware
	logger          *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	browseHandler *handler.BrowseHandler,
	requestHandler *handler.RequestHandler,
	bookmarkHandler *handler.BookmarkHandler,
	settingsHandler *handler.SettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		browseHandler:   browseHandler,
		requestHandler:  requestHandler,
		bookmarkHandler: bookmarkHandler,
		settingsHandler: settingsHandler,
		authMiddleware:  authMiddleware,
		logger:          logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(r.logger),
		middleware.Recovery(r.logger),
	)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Directory is public; a valid token only changes what the caller
		// sees of their own profile and enables distance ordering.
		profiles := v1.Group("/profiles")
		profiles.Use(r.authMiddleware.OptionalAuth())
		{
			profiles.GET("", r.browseHandler.ListProfiles)
			profiles.GET("/:id", r.browseHandler.GetProfile)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile/me")
			{
				profile.GET("", r.profileHandler.GetMyProfile)
				profile.PUT("", r.profileHandler.UpdateMyProfile)
				profile.POST("/skills", r.profileHandler.AddSkill)
				profile.DELETE("/skills/:kind/:name", r.profileHandler.RemoveSkill)
			}

			protected.GET("/settings", r.settingsHandler.Get)
			protected.PUT("/settings", r.settingsHandler.Update)

			bookmarks := protected.Group("/bookmarks")
			{
				bookmarks.GET("", r.bookmarkHandler.List)
				bookmarks.POST("/:profile_id/toggle", r.bookmarkHandler.Toggle)
			}

			requests := protected.Group("/requests")
			{
				requests.POST("", r.requestHandler.CreateRequest)
				requests.GET("/incoming", r.requestHandler.ListIncoming)
				requests.GET("/outgoing", r.requestHandler.ListOutgoing)
				requests.POST("/:id/accept", r.requestHandler.Accept)
				requests.POST("/:id/decline", r.requestHandler.Decline)
				requests.POST("/:id/cancel", r.requestHandler.Cancel)
			}

			swaps := protected.Group("/swaps")
			{
				swaps.GET("/active", r.requestHandler.ListActive)
				swaps.GET("/completed", r.requestHandler.ListCompleted)
				swaps.PUT("/:id/progress", r.requestHandler.UpdateProgress)
				swaps.POST("/:id/complete", r.requestHandler.Complete)
			}
		}
	}

	return router
}
