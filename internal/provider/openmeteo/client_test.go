package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentParsesAndRounds(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "40.0150" || q.Get("longitude") != "-105.2705" {
			t.Errorf("unexpected coordinates: %s", r.URL.RawQuery)
		}
		if q.Get("temperature_unit") != "fahrenheit" {
			t.Errorf("expected fahrenheit request: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":78.6,"relative_humidity_2m":41.2}}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	got, err := c.Current(context.Background(), 40.015, -105.2705)
	if err != nil {
		t.Fatalf("current weather: %v", err)
	}
	if got.TemperatureF != 79 || got.HumidityPct != 41 {
		t.Fatalf("expected rounded 79F/41%%, got %+v", got)
	}
}

func TestCurrentSurfacesHTTPErrors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.Current(context.Background(), 0, 0); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestLocateParsesCoordinates(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"success","lat":40.015,"lon":-105.2705}`))
	}))
	defer ts.Close()

	c := &Client{GeoBaseURL: ts.URL, HTTPClient: ts.Client()}
	lat, lon, err := c.Locate(context.Background())
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if lat != 40.015 || lon != -105.2705 {
		t.Fatalf("unexpected coordinates: %f, %f", lat, lon)
	}
}

func TestLocateRejectsFailureStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail"}`))
	}))
	defer ts.Close()

	c := &Client{GeoBaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, _, err := c.Locate(context.Background()); err == nil {
		t.Fatalf("expected error for failed geolocation")
	}
}
