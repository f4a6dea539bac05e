// Package openmeteo fetches current weather from the Open-Meteo
// forecast API, which needs no key, plus a coarse IP-based location
// fallback for when no coordinates are given.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/jeffreyruoss/run-fuel-calculator/internal/model"
)

const (
	defaultBaseURL    = "https://api.open-meteo.com"
	defaultGeoBaseURL = "http://ip-api.com"
)

type Client struct {
	BaseURL    string
	GeoBaseURL string
	HTTPClient *http.Client
}

// Current returns the temperature and relative humidity at the given
// coordinates, rounded to whole values.
func (c *Client) Current(ctx context.Context, lat, lon float64) (model.Weather, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m&temperature_unit=fahrenheit",
		base, lat, lon)

	body, err := c.get(ctx, url)
	if err != nil {
		return model.Weather{}, err
	}

	var parsed struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
		} `json:"current"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.Weather{}, fmt.Errorf("decode weather response: %w", err)
	}
	return model.Weather{
		TemperatureF: math.Round(parsed.Current.Temperature),
		HumidityPct:  math.Round(parsed.Current.Humidity),
	}, nil
}

// Locate resolves approximate coordinates from the caller's public IP.
func (c *Client) Locate(ctx context.Context) (lat, lon float64, err error) {
	base := strings.TrimRight(strings.TrimSpace(c.GeoBaseURL), "/")
	if base == "" {
		base = defaultGeoBaseURL
	}
	body, err := c.get(ctx, base+"/json/?fields=status,lat,lon")
	if err != nil {
		return 0, 0, err
	}

	var parsed struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, 0, fmt.Errorf("decode geolocation response: %w", err)
	}
	if parsed.Status != "success" {
		return 0, 0, fmt.Errorf("geolocation lookup refused")
	}
	return parsed.Lat, parsed.Lon, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create weather request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weather response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}
	return body, nil
}
