package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/pkg/metrics"
)

// PhotonClient performs forward and reverse geocoding against a Photon
// (Komoot) HTTP server.
type PhotonClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics metrics.Metrics
}

func NewPhotonClient(baseURL string, m metrics.Metrics) *PhotonClient {
	return &PhotonClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "photon",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		metrics: m,
	}
}

// photonResponse is the GeoJSON FeatureCollection Photon returns.
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // lon, lat
		} `json:"geometry"`
		Properties struct {
			Name    string `json:"name"`
			Country string `json:"country"`
			City    string `json:"city"`
			Street  string `json:"street"`
			State   string `json:"state"`
		} `json:"properties"`
	} `json:"features"`
}

func (c *PhotonClient) Search(ctx context.Context, text string, limit int) ([]outbound.Place, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("limit", fmt.Sprintf("%d", limit))

	body, err := c.get(ctx, c.baseURL+"/api/?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var resp photonResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode photon response: %w", err)
	}

	places := make([]outbound.Place, 0, len(resp.Features))
	for _, f := range resp.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		point, err := geo.NewGeoPoint(f.Geometry.Coordinates[1], f.Geometry.Coordinates[0])
		if err != nil {
			continue
		}
		places = append(places, outbound.Place{
			Point:   point,
			Name:    f.Properties.Name,
			Country: f.Properties.Country,
			Address: formatAddress(f.Properties.Street, f.Properties.City, f.Properties.State),
		})
	}
	return places, nil
}

func (c *PhotonClient) Reverse(ctx context.Context, p geo.GeoPoint) (string, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", p.Latitude))
	query.Set("lon", fmt.Sprintf("%f", p.Longitude))

	body, err := c.get(ctx, c.baseURL+"/reverse?"+query.Encode())
	if err != nil {
		return "", err
	}

	var resp photonResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode photon response: %w", err)
	}
	if len(resp.Features) == 0 {
		return "", nil
	}

	props := resp.Features[0].Properties
	if props.Name != "" {
		return formatAddress(props.Name, props.City, props.Country), nil
	}
	return formatAddress(props.Street, props.City, props.Country), nil
}

func (c *PhotonClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return doGet(ctx, c.client, rawURL)
	})
	c.metrics.ObserveExternalCallDuration("photon", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func formatAddress(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
