package models

import (
	"time"
)

// Suggestion is the model for the 'suggestions' table.
// Content fields are never updated in place: a row is created, its status
// may flip from 'inactive' to 'active' on approval, or it gets deleted.
type Suggestion struct {
	SuggestionID string  `json:"suggestion_id" db:"suggestion_id"`
	Name         string  `json:"name" db:"name"`
	Activity     string  `json:"activity" db:"activity"`
	Reason       *string `json:"reason,omitempty" db:"reason"`
	Duration     *string `json:"duration,omitempty" db:"duration"`

	EnergyLevel string `json:"energyLevel" db:"energy_level"` // Low, Medium, High, Any
	TimeOfDay   string `json:"timeOfDay" db:"time_of_day"`    // Morning, Afternoon, Evening, Any
	Category    string `json:"category" db:"category"`
	Indoor      bool   `json:"indoor" db:"indoor"`
	Condition   string `json:"condition" db:"condition"` // weather condition label, or "any"
	Status      string `json:"status" db:"status"`       // inactive | active

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
