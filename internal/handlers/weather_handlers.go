package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-golang/internal/lifestyle"
)

// GetWeather is the handler for GET /weather.
// Proxies Open-Meteo and enriches the response with the health indexes so
// the front end renders everything from a single call.
func (h *Handlers) GetWeather(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	city := c.Query("city")
	country := c.Query("country")

	report, err := h.Weather.Fetch(c.Request.Context(), lat, lon, city, country)
	if err != nil {
		log.Printf("Error fetching weather: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}

	health := lifestyle.Assess(
		report.Current.Temperature,
		report.Current.Humidity,
		report.Current.WindSpeed,
		report.Current.Condition,
	)

	c.JSON(http.StatusOK, gin.H{
		"current":  report.Current,
		"forecast": report.Forecast,
		"health":   health,
	})
}

// GeocodeCity is the handler for GET /geocode.
// An unknown city is a 200 with an empty list, not an error.
func (h *Handlers) GeocodeCity(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	count := 5
	if raw := c.Query("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			count = parsed
		}
	}

	results, err := h.Weather.Geocode(c.Request.Context(), name, count)
	if err != nil {
		log.Printf("Error geocoding city %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to geocode city"})
		return
	}

	c.JSON(http.StatusOK, results)
}
