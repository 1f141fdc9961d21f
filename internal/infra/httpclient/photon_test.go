package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/pkg/metrics"
)

const searchFixture = `{
	"features": [
		{
			"geometry": {"coordinates": [-122.4862, 37.7694]},
			"properties": {"name": "Golden Gate Park", "country": "United States", "city": "San Francisco", "state": "California"}
		},
		{
			"geometry": {"coordinates": [200.0, 95.0]},
			"properties": {"name": "Broken Row"}
		}
	]
}`

func TestPhotonClient_Search(t *testing.T) {
	t.Run("Should decode features and skip invalid coordinates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "golden gate", r.URL.Query().Get("q"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			w.Write([]byte(searchFixture))
		}))
		defer srv.Close()

		client := NewPhotonClient(srv.URL, metrics.NewNop())
		places, err := client.Search(context.Background(), "golden gate", 5)

		assert.NoError(t, err)
		assert.Len(t, places, 1)
		assert.Equal(t, "Golden Gate Park", places[0].Name)
		assert.InDelta(t, 37.7694, places[0].Point.Latitude, 1e-9)
		assert.InDelta(t, -122.4862, places[0].Point.Longitude, 1e-9)
	})

	t.Run("Should fail on a non-2xx response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewPhotonClient(srv.URL, metrics.NewNop())
		_, err := client.Search(context.Background(), "golden gate", 5)

		assert.Error(t, err)
	})
}

func TestPhotonClient_Reverse(t *testing.T) {
	t.Run("Should build an address from the first feature", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features": [{"geometry": {"coordinates": [-122.41, 37.78]}, "properties": {"name": "Market St", "city": "San Francisco", "country": "United States"}}]}`))
		}))
		defer srv.Close()

		client := NewPhotonClient(srv.URL, metrics.NewNop())
		address, err := client.Reverse(context.Background(), geo.GeoPoint{Latitude: 37.78, Longitude: -122.41})

		assert.NoError(t, err)
		assert.Equal(t, "Market St, San Francisco, United States", address)
	})

	t.Run("Should return empty for no features", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features": []}`))
		}))
		defer srv.Close()

		client := NewPhotonClient(srv.URL, metrics.NewNop())
		address, err := client.Reverse(context.Background(), geo.GeoPoint{Latitude: 37.78, Longitude: -122.41})

		assert.NoError(t, err)
		assert.Empty(t, address)
	})
}
