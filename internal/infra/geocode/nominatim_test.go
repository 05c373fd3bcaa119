package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, baseURL string) service.ReverseGeocoder {
	t.Helper()

	client, err := NewClient(&config.GeocodingConfig{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return client
}

func TestClient_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Marche Central",
			"display_name": "Marche Central, Avenue Ahmadou Ahidjo, Yaounde, Cameroon",
			"category": "amenity",
			"type": "marketplace",
			"address": {"road": "Avenue Ahmadou Ahidjo", "city": "Yaounde"}
		}`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(t, server.URL)

	coord := entity.Coordinate{Latitude: 3.8614, Longitude: 11.5208}
	poi, err := geocoder.ReverseGeocode(context.Background(), coord)
	require.NoError(t, err)
	require.NotNil(t, poi)

	assert.Equal(t, "Marche Central", poi.Name)
	assert.Equal(t, "marketplace", poi.Category)
	assert.Equal(t, "Yaounde", poi.City)
	assert.Equal(t, coord, poi.Location)
	assert.True(t, poi.IsTransient)
}

func TestClient_ReverseGeocodeNothingFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(t, server.URL)

	poi, err := geocoder.ReverseGeocode(context.Background(),
		entity.Coordinate{Latitude: 0, Longitude: -160})
	require.NoError(t, err)
	assert.Nil(t, poi)
}

func TestClient_ReverseGeocodeInvalidCoordinate(t *testing.T) {
	geocoder := newTestGeocoder(t, "http://localhost:1")

	_, err := geocoder.ReverseGeocode(context.Background(),
		entity.Coordinate{Latitude: 100, Longitude: 0})
	assert.Error(t, err)
}
