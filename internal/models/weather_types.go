package models

// CurrentWeather is the normalized "right now" block returned by the
// weather proxy. FeelsLike mirrors Temperature because Open-Meteo's basic
// current_weather payload has no apparent-temperature field.
type CurrentWeather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	FeelsLike   float64 `json:"feelsLike"`
	Description string  `json:"description"`
}

// TemperatureRange is the daily high/low pair.
type TemperatureRange struct {
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

// ForecastDay is one entry of the 7-day forecast.
type ForecastDay struct {
	Day           string           `json:"day"`
	Date          string           `json:"date"`
	Temperature   TemperatureRange `json:"temperature"`
	Condition     string           `json:"condition"`
	Precipitation float64          `json:"precipitation"`
	WindSpeed     float64          `json:"windSpeed"`
}

// WeatherReport bundles current conditions with the weekly forecast.
type WeatherReport struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
}

// GeocodeResult is one candidate location for a city search.
type GeocodeResult struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}
