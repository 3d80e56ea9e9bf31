package lifestyle

import (
	"strings"

	"github.com/weatherly/weatherly-golang/internal/models"
)

// WindyThresholdKmh is the wind speed above which the featured pick
// prefers indoor activities.
const WindyThresholdKmh = 20.0

// ActivityMatches splits the suggestions matching the current weather by
// indoor/outdoor and highlights a single featured one.
type ActivityMatches struct {
	Indoor           []models.Suggestion `json:"indoor"`
	Outdoor          []models.Suggestion `json:"outdoor"`
	Featured         *models.Suggestion  `json:"featured"`
	WeatherCondition string              `json:"weatherCondition"`
}

// MatchActivities filters suggestions against the current condition.
// A suggestion matches when its condition is "any" or equals the current
// condition exactly (trimmed, case-sensitive — no fuzzy matching).
func MatchActivities(suggestions []models.Suggestion, condition string, windSpeed float64) ActivityMatches {
	currentCondition := strings.TrimSpace(condition)

	matches := ActivityMatches{
		Indoor:           []models.Suggestion{},
		Outdoor:          []models.Suggestion{},
		WeatherCondition: currentCondition,
	}

	for _, s := range suggestions {
		cond := strings.TrimSpace(s.Condition)
		if cond != "any" && cond != currentCondition {
			continue
		}
		if s.Indoor {
			matches.Indoor = append(matches.Indoor, s)
		} else {
			matches.Outdoor = append(matches.Outdoor, s)
		}
	}

	// Featured pick: outdoor first, unless it is windy enough to drive
	// everyone inside. Fall back to the other side either way.
	first := func(list []models.Suggestion) *models.Suggestion {
		if len(list) == 0 {
			return nil
		}
		return &list[0]
	}

	if windSpeed > WindyThresholdKmh {
		matches.Featured = first(matches.Indoor)
		if matches.Featured == nil {
			matches.Featured = first(matches.Outdoor)
		}
	} else {
		matches.Featured = first(matches.Outdoor)
		if matches.Featured == nil {
			matches.Featured = first(matches.Indoor)
		}
	}

	return matches
}
