package weather

import (
	"context"
	"net/url"
	"strconv"

	"github.com/weatherly/weatherly-golang/internal/models"
)

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// Geocode resolves a city name to candidate locations. A city the upstream
// does not know yields an empty slice, not an error.
func (c *Client) Geocode(ctx context.Context, name string, count int) ([]models.GeocodeResult, error) {
	if count <= 0 {
		count = 5
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "en")
	params.Set("format", "json")

	var data geocodeResponse
	if err := c.getJSON(ctx, c.GeocodeURL+"?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	results := []models.GeocodeResult{}
	for _, r := range data.Results {
		results = append(results, models.GeocodeResult{
			Lat:     r.Latitude,
			Lon:     r.Longitude,
			City:    r.Name,
			Country: r.Country,
		})
	}

	return results, nil
}
