package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weatherly/weatherly-golang/internal/models"
)

const suggestionColumns = "suggestion_id, name, activity, reason, duration, energy_level, time_of_day, category, indoor, `condition`, status, created_at"

// SubmitSuggestionInput defines the JSON input for submitting a suggestion.
// Everything except 'activity' is optional and gets defaulted; 'indoor'
// accepts either a boolean or the string "true" from older form clients.
type SubmitSuggestionInput struct {
	Name        string      `json:"name"`
	Activity    string      `json:"activity"`
	Reason      *string     `json:"reason"`
	Duration    *string     `json:"duration"`
	EnergyLevel string      `json:"energyLevel"`
	TimeOfDay   string      `json:"timeOfDay"`
	Category    string      `json:"category"`
	Indoor      interface{} `json:"indoor"`
	Condition   string      `json:"condition"`
	Status      string      `json:"status"`
}

// SubmitSuggestion is the handler for POST /suggestions (public submit).
// The admin form posts here too, passing status "active" for direct adds;
// public submissions default to "inactive" and wait for approval.
func (h *Handlers) SubmitSuggestion(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input SubmitSuggestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Activity) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity name is required."})
		return
	}

	// 2. --- Apply Defaults ---
	suggestion := &models.Suggestion{
		SuggestionID: uuid.New().String(),
		Name:         defaultString(input.Name, "Anonymous"),
		Activity:     input.Activity,
		Reason:       input.Reason,
		Duration:     input.Duration,
		EnergyLevel:  defaultString(input.EnergyLevel, "Any"),
		TimeOfDay:    defaultString(input.TimeOfDay, "Any"),
		Category:     defaultString(input.Category, "Relaxation"),
		Indoor:       normalizeIndoor(input.Indoor),
		Condition:    defaultString(input.Condition, "any"),
		Status:       defaultString(input.Status, "inactive"),
		CreatedAt:    time.Now(),
	}

	// 3. --- Save to Database ---
	query := "INSERT INTO suggestions (" + suggestionColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

	_, err := h.DB.Exec(query,
		suggestion.SuggestionID,
		suggestion.Name,
		suggestion.Activity,
		suggestion.Reason,
		suggestion.Duration,
		suggestion.EnergyLevel,
		suggestion.TimeOfDay,
		suggestion.Category,
		suggestion.Indoor,
		suggestion.Condition,
		suggestion.Status,
		suggestion.CreatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit suggestion."})
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, suggestion)
}

// GetAllSuggestions is the handler for GET /suggestions (admin list).
// Returns every suggestion regardless of status, newest first.
func (h *Handlers) GetAllSuggestions(c *gin.Context) {
	h.listSuggestions(c, "SELECT "+suggestionColumns+" FROM suggestions ORDER BY created_at DESC")
}

// GetPublicSuggestions is the handler for GET /suggestions/public.
// Only approved (active) suggestions are visible to the public widgets.
func (h *Handlers) GetPublicSuggestions(c *gin.Context) {
	h.listSuggestions(c, "SELECT "+suggestionColumns+" FROM suggestions WHERE status = ? ORDER BY created_at DESC", "active")
}

func (h *Handlers) listSuggestions(c *gin.Context, query string, args ...interface{}) {
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}
	defer rows.Close()

	// Initialize as empty slice so it renders as [] in JSON instead of null.
	suggestions := []*models.Suggestion{}
	for rows.Next() {
		var s models.Suggestion
		if err := scanSuggestion(rows, &s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan suggestion row"})
			return
		}
		suggestions = append(suggestions, &s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating suggestion rows"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// UpdateSuggestionStatusInput defines the JSON input for a status change.
type UpdateSuggestionStatusInput struct {
	Status string `json:"status" binding:"required,oneof=inactive active"`
}

// UpdateSuggestionStatus is the handler for PUT /suggestions/:id/status.
// Approving a non-existent id is a no-op: the response body is null and
// no error is raised.
func (h *Handlers) UpdateSuggestionStatus(c *gin.Context) {
	id := c.Param("id")

	var input UpdateSuggestionStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec("UPDATE suggestions SET status = ? WHERE suggestion_id = ?", input.Status, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update suggestion status"})
		return
	}

	// Read the row back so the caller gets the updated state.
	var s models.Suggestion
	row := h.DB.QueryRow("SELECT "+suggestionColumns+" FROM suggestions WHERE suggestion_id = ?", id)
	if err := scanSuggestion(row, &s); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated suggestion"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// DeleteSuggestion is the handler for DELETE /suggestions/:id.
// Deletion is idempotent: removing a missing id still reports success.
func (h *Handlers) DeleteSuggestion(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.DB.Exec("DELETE FROM suggestions WHERE suggestion_id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete suggestion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSuggestion(row scanner, s *models.Suggestion) error {
	return row.Scan(
		&s.SuggestionID,
		&s.Name,
		&s.Activity,
		&s.Reason,
		&s.Duration,
		&s.EnergyLevel,
		&s.TimeOfDay,
		&s.Category,
		&s.Indoor,
		&s.Condition,
		&s.Status,
		&s.CreatedAt,
	)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func normalizeIndoor(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
