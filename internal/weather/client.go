package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/weatherly/weatherly-golang/internal/models"
)

const (
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"

	// Open-Meteo omits humidity from the basic current_weather block,
	// so the report falls back to this value when the field is absent.
	fallbackHumidity = 60
)

// conditionByCode maps Open-Meteo weathercodes to human-readable labels.
// Suggestion matching compares against these exact strings, so the table
// is fixed; anything unlisted renders as "Unknown".
var conditionByCode = map[int]string{
	0:  "Clear",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Rime Fog",
	51: "Light Drizzle",
	61: "Light Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	71: "Snow",
	80: "Rain Showers",
	95: "Thunderstorm",
}

// ConditionFromCode resolves a weathercode to its display label.
func ConditionFromCode(code int) string {
	if label, ok := conditionByCode[code]; ok {
		return label
	}
	return "Unknown"
}

// Client talks to the Open-Meteo forecast and geocoding APIs.
// The URL fields exist so tests can point it at a local server.
type Client struct {
	ForecastURL string
	GeocodeURL  string
	HTTPClient  *http.Client
}

func NewClient() *Client {
	return &Client{
		ForecastURL: defaultForecastURL,
		GeocodeURL:  defaultGeocodeURL,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// forecastResponse mirrors the slice of the Open-Meteo payload we consume.
type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WindSpeedMax     []float64 `json:"windspeed_10m_max"`
		WeatherCode      []int     `json:"weathercode"`
		HumidityMax      []float64 `json:"relative_humidity_2m_max"`
	} `json:"daily"`
}

// Fetch retrieves current weather plus the daily forecast for a location.
// City and country are passed through untouched; they only label the response.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, city, country string) (*models.WeatherReport, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", lat))
	params.Set("longitude", fmt.Sprintf("%g", lon))
	params.Set("current_weather", "true")
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,weathercode")
	params.Set("timezone", "auto")

	var data forecastResponse
	if err := c.getJSON(ctx, c.ForecastURL+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	humidity := float64(fallbackHumidity)
	if len(data.Daily.HumidityMax) > 0 {
		humidity = data.Daily.HumidityMax[0]
	}

	report := &models.WeatherReport{
		Current: models.CurrentWeather{
			City:        city,
			Country:     country,
			Temperature: data.CurrentWeather.Temperature,
			Condition:   ConditionFromCode(data.CurrentWeather.WeatherCode),
			Humidity:    humidity,
			WindSpeed:   data.CurrentWeather.WindSpeed,
			FeelsLike:   data.CurrentWeather.Temperature,
			Description: "Live weather update",
		},
		Forecast: []models.ForecastDay{},
	}

	for i, day := range data.Daily.Time {
		if i >= len(data.Daily.TemperatureMax) || i >= len(data.Daily.TemperatureMin) ||
			i >= len(data.Daily.PrecipitationSum) || i >= len(data.Daily.WindSpeedMax) ||
			i >= len(data.Daily.WeatherCode) {
			break
		}

		dayLabel, dateLabel := day, day
		if t, err := time.Parse("2006-01-02", day); err == nil {
			dayLabel = t.Format("Mon")
			dateLabel = t.Format("Jan 2")
		}

		report.Forecast = append(report.Forecast, models.ForecastDay{
			Day:  dayLabel,
			Date: dateLabel,
			Temperature: models.TemperatureRange{
				High: data.Daily.TemperatureMax[i],
				Low:  data.Daily.TemperatureMin[i],
			},
			Condition:     ConditionFromCode(data.Daily.WeatherCode[i]),
			Precipitation: data.Daily.PrecipitationSum[i],
			WindSpeed:     data.Daily.WindSpeedMax[i],
		})
	}

	return report, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
