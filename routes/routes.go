package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"beautycrave/handlers"
	"beautycrave/middleware"
)

// RegisterAuthRoutes registers owner session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.OwnerLoginHandler)

		api.Use(middleware.JWTAuthOwnerMiddleware())
		api.POST("/logout", handlers.OwnerLogoutHandler)
	}
}

// RegisterScheduleRoutes registers the owner dashboard endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.JWTAuthOwnerMiddleware())
		api.POST("", hb.CreateScheduleHandler)
		api.GET("", hb.ListSchedulesHandler)
		api.GET("/:id", hb.GetScheduleHandler)
		api.GET("/:id/stats", hb.GetStatsHandler)
		api.GET("/:id/link", hb.GetShareLinkHandler)
		api.PUT("/:id/bookings", hb.UpdateBookingHandler)
		api.DELETE("/:id/bookings/:slotId", hb.CancelBookingHandler)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthOwnerMiddleware())
		bookings.POST("/move", hb.MoveBookingHandler)
	}
}

// RegisterPublicBookingRoutes registers the share-link booking page
// endpoints. They are unauthenticated; the token is the capability.
func RegisterPublicBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/book")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.GET("/:token", hb.GetPublicScheduleHandler)
		api.GET("/:token/availability", hb.AvailabilityHandler)
		api.POST("/:token/reserve", hb.ReserveHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BeautyCrave"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterPublicBookingRoutes(r, hb)
}
