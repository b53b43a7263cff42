package conditions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast" +
	"?latitude=%.4f&longitude=%.4f" +
	"&hourly=temperature_2m,wind_speed_10m,precipitation_probability" +
	"&current=temperature_2m,wind_speed_10m,wind_gusts_10m" +
	"&temperature_unit=fahrenheit&wind_speed_unit=mph&forecast_days=2"

type openMeteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WindGusts   float64 `json:"wind_gusts_10m"`
	} `json:"current"`
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature   []float64 `json:"temperature_2m"`
		WindSpeed     []float64 `json:"wind_speed_10m"`
		Precipitation []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
}

// OpenMeteo fetches real forecasts from the Open-Meteo API. Requests go
// through a token-bucket limiter so a misconfigured refresh cadence
// cannot hammer the free endpoint.
type OpenMeteo struct {
	client  *http.Client
	limiter *rate.Limiter
	lat     float64
	lon     float64
}

func NewOpenMeteo(lat, lon float64) *OpenMeteo {
	return &OpenMeteo{
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Minute), 2),
		lat:     lat,
		lon:     lon,
	}
}

func (o *OpenMeteo) Name() string {
	return "open-meteo"
}

// Fetch retrieves the hourly forecast starting at the current hour and
// builds a validated snapshot from the next 24 samples.
func (o *OpenMeteo) Fetch(ctx context.Context) (*Snapshot, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("openmeteo: rate limit wait: %w", err)
	}

	url := fmt.Sprintf(openMeteoURL, o.lat, o.lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: build request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openmeteo: unexpected status %s", resp.Status)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("openmeteo: decode: %w", err)
	}

	now := time.Now()
	start := o.startIndex(body.Hourly.Time, now)
	temps, err := window(body.Hourly.Temperature, start)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: temperature series: %w", err)
	}
	winds, err := window(body.Hourly.WindSpeed, start)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: wind series: %w", err)
	}
	rain, err := window(body.Hourly.Precipitation, start)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: precipitation series: %w", err)
	}

	return New(temps, winds, rain,
		body.Current.Temperature, body.Current.WindSpeed, body.Current.WindGusts, now)
}

// startIndex finds the hourly slot matching the current hour. Open-Meteo
// hourly series start at local midnight of the first forecast day.
func (o *OpenMeteo) startIndex(times []string, now time.Time) int {
	want := now.Format("2006-01-02T15")
	for i, ts := range times {
		if len(ts) >= 13 && ts[:13] == want {
			return i
		}
	}
	return 0
}

func window(samples []float64, start int) ([]float64, error) {
	if start+Hours > len(samples) {
		return nil, fmt.Errorf("only %d samples from offset %d, want %d", len(samples)-start, start, Hours)
	}
	return samples[start : start+Hours], nil
}
