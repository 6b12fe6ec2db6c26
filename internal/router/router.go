package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/showbill/showbill-backend/config"
	"github.com/showbill/showbill-backend/internal/app/controller"
	apperrors "github.com/showbill/showbill-backend/internal/errors"
	"github.com/showbill/showbill-backend/internal/middleware"
)

type Router struct {
	venueController  *controller.VenueController
	artistController *controller.ArtistController
	showController   *controller.ShowController
	config           *config.Config
}

func NewRouter(
	venueController *controller.VenueController,
	artistController *controller.ArtistController,
	showController *controller.ShowController,
	cfg *config.Config,
) *Router {
	return &Router{
		venueController:  venueController,
		artistController: artistController,
		showController:   showController,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Showbill API is running",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Showbill",
		})
	})

	venues := router.Group("/venues")
	{
		venues.GET("", r.venueController.ListVenues)
		venues.POST("/search", r.venueController.SearchVenues)
		venues.GET("/create", r.venueController.NewVenueForm)
		venues.POST("/create", r.venueController.CreateVenue)
		venues.GET("/:id", r.venueController.GetVenue)
		venues.DELETE("/:id", r.venueController.DeleteVenue)
		venues.GET("/:id/edit", r.venueController.EditVenueForm)
		venues.POST("/:id/edit", r.venueController.UpdateVenue)
	}

	artists := router.Group("/artists")
	{
		artists.GET("", r.artistController.ListArtists)
		artists.POST("/search", r.artistController.SearchArtists)
		artists.GET("/create", r.artistController.NewArtistForm)
		artists.POST("/create", r.artistController.CreateArtist)
		artists.GET("/:id", r.artistController.GetArtist)
		artists.GET("/:id/edit", r.artistController.EditArtistForm)
		artists.POST("/:id/edit", r.artistController.UpdateArtist)
	}

	shows := router.Group("/shows")
	{
		shows.GET("", r.showController.ListShows)
		shows.GET("/create", r.showController.NewShowForm)
		shows.POST("/create", r.showController.CreateShow)
	}

	router.NoRoute(func(c *gin.Context) {
		apperrors.NotFound(c, apperrors.RouteNotFound, "The requested page does not exist")
	})

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
