package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-golang/internal/handlers"
	"github.com/weatherly/weatherly-golang/internal/middleware"
)

// CORSMiddleware tells the browser the configured frontend origin may talk
// to us, and answers the preflight OPTIONS request with 204.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", frontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin, x-admin-token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must be the very first thing the router uses.
	router.Use(CORSMiddleware(h.Config.FrontendURL))

	// Uploaded outfit images are served straight from disk.
	router.Static("/outfits", h.Config.UploadDir)

	// --- Ping Route (Public) ---
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Auth Routes (Public) ---
	router.POST("/admin/login", h.AdminLogin)

	// --- Public Routes ---
	router.POST("/suggestions", h.SubmitSuggestion)
	router.GET("/suggestions/public", h.GetPublicSuggestions)
	router.GET("/images", h.GetAllImages)

	// --- Weather & Lifestyle Routes (Public) ---
	router.GET("/weather", h.GetWeather)
	router.GET("/geocode", h.GeocodeCity)
	router.GET("/outfit", h.GetOutfit)
	router.GET("/activities/suggest", h.SuggestActivities)

	// --- Admin Routes (Token Required) ---
	admin := router.Group("/")
	admin.Use(middleware.AdminAuth(h.Config.Admin.Token))
	{
		admin.GET("/suggestions", h.GetAllSuggestions)
		admin.PUT("/suggestions/:id/status", h.UpdateSuggestionStatus)
		admin.DELETE("/suggestions/:id", h.DeleteSuggestion)

		admin.POST("/images", h.UploadImage)
		admin.PUT("/images/:id", h.UpdateImage)
		admin.PATCH("/images/:id", h.PatchImage)
		admin.DELETE("/images/:id", h.DeleteImage)
	}

	return router
}
