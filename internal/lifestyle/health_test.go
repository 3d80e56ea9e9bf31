package lifestyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUVIndexFor(t *testing.T) {
	assert.Equal(t, UVIndex{Level: 1, Description: "Minimal"}, UVIndexFor("Overcast", 35))
	assert.Equal(t, UVIndex{Level: 9, Description: "Very High"}, UVIndexFor("Clear", 32))
	assert.Equal(t, UVIndex{Level: 7, Description: "High"}, UVIndexFor("Sunny", 27))
	assert.Equal(t, UVIndex{Level: 5, Description: "Moderate"}, UVIndexFor("Mainly Clear", 22))
	assert.Equal(t, UVIndex{Level: 3, Description: "Low"}, UVIndexFor("Clear", 12))
}

func TestComfortIndex(t *testing.T) {
	// Ideal bands across the board.
	assert.Equal(t, 100, ComfortIndex(21, 50, 10))
	// Everything outside every band.
	assert.Equal(t, 0, ComfortIndex(-20, 5, 50))
	// Middle bands: temp 16 (+30), humidity 65 (+20), wind 20 (+20).
	assert.Equal(t, 70, ComfortIndex(16, 65, 20))
	// Calm air still earns the lowest wind share.
	assert.Equal(t, 80, ComfortIndex(21, 50, 0))
}

func TestAirQualityIndex(t *testing.T) {
	aqi := AirQualityIndex("Heavy Rain", 20, 50)
	assert.Equal(t, 10, aqi.Value)
	assert.Equal(t, "excellent", aqi.Status)

	aqi = AirQualityIndex("Clear", 5, 50)
	assert.Equal(t, 50, aqi.Value)
	assert.Equal(t, "good", aqi.Status)

	aqi = AirQualityIndex("Clear", 5, 80)
	assert.Equal(t, 60, aqi.Value)
	assert.Equal(t, "moderate", aqi.Status)
}

func TestHydrationIndex(t *testing.T) {
	// Hot, dry and sunny maxes out.
	assert.Equal(t, 100, HydrationIndex(30, 20, "Sunny"))
	// Cold weather reduces the baseline.
	assert.Equal(t, 40, HydrationIndex(5, 50, "Overcast"))
	// Mild and humid: +15 temp, +10 humidity.
	assert.Equal(t, 75, HydrationIndex(22, 75, "Overcast"))
}

func TestSkinProtectionIndex(t *testing.T) {
	// Overcast, mild, average humidity: baseline only.
	assert.Equal(t, 30, SkinProtectionIndex(15, "Overcast", 50))
	// Clear and scorching: 30+40+20+10 clamps at 100.
	assert.Equal(t, 100, SkinProtectionIndex(32, "Clear", 50))
	// Freezing adds cold protection.
	assert.Equal(t, 55, SkinProtectionIndex(2, "Overcast", 50))
}

func TestAssessComposesAllIndexes(t *testing.T) {
	report := Assess(21, 50, 10, "Clear")

	assert.Equal(t, 5, report.UV.Level)
	assert.Equal(t, 100, report.Comfort)
	assert.Equal(t, "good", report.AirQuality.Status)
	assert.NotZero(t, report.Hydration)
	assert.NotZero(t, report.SkinProtection)
}
