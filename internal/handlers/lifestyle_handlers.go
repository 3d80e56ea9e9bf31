package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-golang/internal/lifestyle"
	"github.com/weatherly/weatherly-golang/internal/models"
)

// GetOutfit is the handler for GET /outfit.
// Buckets the given temperature, filters the image catalog and assembles a
// random outfit. Two identical requests will usually return different picks.
func (h *Handlers) GetOutfit(c *gin.Context) {
	temp, err := strconv.ParseFloat(c.Query("temperature"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature query parameter is required"})
		return
	}

	rows, err := h.DB.Query("SELECT " + imageColumns + " FROM images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := scanImage(rows, &img); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan image row"})
			return
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating image rows"})
		return
	}

	c.JSON(http.StatusOK, lifestyle.PickOutfit(images, temp))
}

// SuggestActivities is the handler for GET /activities/suggest.
// Matches active suggestions against the current condition and wind speed
// and highlights a single featured pick.
func (h *Handlers) SuggestActivities(c *gin.Context) {
	condition := c.Query("condition")

	windSpeed := 0.0
	if raw := c.Query("windSpeed"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			windSpeed = parsed
		}
	}

	rows, err := h.DB.Query("SELECT "+suggestionColumns+" FROM suggestions WHERE status = ? ORDER BY created_at DESC", "active")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var s models.Suggestion
		if err := scanSuggestion(rows, &s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan suggestion row"})
			return
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating suggestion rows"})
		return
	}

	c.JSON(http.StatusOK, lifestyle.MatchActivities(suggestions, condition, windSpeed))
}
