package lifestyle

import "strings"

// UVIndex is a coarse UV estimate from condition and temperature.
type UVIndex struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// AirQuality is a heuristic AQI-style score; lower is better.
type AirQuality struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// HealthReport groups all lifestyle health indexes for the current weather.
type HealthReport struct {
	UV             UVIndex    `json:"uv"`
	Comfort        int        `json:"comfort"`
	AirQuality     AirQuality `json:"airQuality"`
	Hydration      int        `json:"hydration"`
	SkinProtection int        `json:"skinProtection"`
}

// Assess computes every health index for the given conditions.
func Assess(temperature, humidity, windSpeed float64, condition string) HealthReport {
	return HealthReport{
		UV:             UVIndexFor(condition, temperature),
		Comfort:        ComfortIndex(temperature, humidity, windSpeed),
		AirQuality:     AirQualityIndex(condition, windSpeed, humidity),
		Hydration:      HydrationIndex(temperature, humidity, condition),
		SkinProtection: SkinProtectionIndex(temperature, condition, humidity),
	}
}

// UVIndexFor estimates UV exposure. Anything that isn't sunny or clear is
// treated as minimal regardless of temperature.
func UVIndexFor(condition string, temperature float64) UVIndex {
	cond := strings.ToLower(condition)
	isSunny := strings.Contains(cond, "sun") || strings.Contains(cond, "clear")
	if !isSunny {
		return UVIndex{Level: 1, Description: "Minimal"}
	}

	switch {
	case temperature > 30:
		return UVIndex{Level: 9, Description: "Very High"}
	case temperature > 25:
		return UVIndex{Level: 7, Description: "High"}
	case temperature > 20:
		return UVIndex{Level: 5, Description: "Moderate"}
	default:
		return UVIndex{Level: 3, Description: "Low"}
	}
}

// ComfortIndex scores 0-100 how pleasant conditions are. Each of
// temperature, humidity and wind contributes a band-based share.
func ComfortIndex(temperature, humidity, windSpeed float64) int {
	score := 0

	switch {
	case temperature >= 18 && temperature <= 24:
		score += 40
	case temperature >= 15 && temperature <= 27:
		score += 30
	case temperature >= 10 && temperature <= 32:
		score += 20
	case temperature >= 5 && temperature <= 35:
		score += 10
	}

	switch {
	case humidity >= 40 && humidity <= 60:
		score += 30
	case humidity >= 30 && humidity <= 70:
		score += 20
	case humidity >= 20 && humidity <= 80:
		score += 10
	}

	switch {
	case windSpeed >= 5 && windSpeed <= 15:
		score += 30
	case windSpeed >= 2 && windSpeed <= 25:
		score += 20
	case windSpeed <= 35:
		score += 10
	}

	return clamp(score, 0, 100)
}

// AirQualityIndex is a rough proxy: rain and wind clean the air,
// high humidity traps pollutants.
func AirQualityIndex(condition string, windSpeed, humidity float64) AirQuality {
	cond := strings.ToLower(condition)

	aqi := 50
	if strings.Contains(cond, "rain") {
		aqi -= 25
	}
	if windSpeed > 15 {
		aqi -= 15
	}
	if humidity > 70 {
		aqi += 10
	}
	aqi = clamp(aqi, 10, 100)

	switch {
	case aqi <= 25:
		return AirQuality{Value: aqi, Description: "Excellent", Status: "excellent"}
	case aqi <= 50:
		return AirQuality{Value: aqi, Description: "Good", Status: "good"}
	case aqi <= 75:
		return AirQuality{Value: aqi, Description: "Moderate", Status: "moderate"}
	default:
		return AirQuality{Value: aqi, Description: "Poor", Status: "poor"}
	}
}

// HydrationIndex scores 20-100 how aggressively to hydrate.
func HydrationIndex(temperature, humidity float64, condition string) int {
	needs := 50

	switch {
	case temperature > 25:
		needs += 30
	case temperature > 20:
		needs += 15
	case temperature < 10:
		needs -= 10
	}

	switch {
	case humidity < 30:
		needs += 20
	case humidity > 70:
		needs += 10
	}

	if strings.Contains(strings.ToLower(condition), "sun") {
		needs += 15
	}

	return clamp(needs, 20, 100)
}

// SkinProtectionIndex scores 10-100 how much sun/cold protection skin needs.
func SkinProtectionIndex(temperature float64, condition string, humidity float64) int {
	protection := 30

	cond := strings.ToLower(condition)
	if strings.Contains(cond, "sun") || strings.Contains(cond, "clear") {
		protection += 40
		if temperature > 25 {
			protection += 20
		}
		if temperature > 30 {
			protection += 10
		}
	}
	if humidity < 40 {
		protection += 15
	}
	if temperature < 5 {
		protection += 25
	}

	return clamp(protection, 10, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
