package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/gocabs/rideflow/internal/domain/entity"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/pkg/metrics"
)

// DriverAPIClient fetches the candidate driver list from the driver data
// service.
type DriverAPIClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics metrics.Metrics
}

func NewDriverAPIClient(baseURL string, m metrics.Metrics) *DriverAPIClient {
	return &DriverAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "driver-api",
			Timeout: 15 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		metrics: m,
	}
}

type driverDTO struct {
	ID              int     `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	ProfileImageURL string  `json:"profile_image_url"`
	CarImageURL     string  `json:"car_image_url"`
	CarSeats        int     `json:"car_seats"`
	Rating          string  `json:"rating"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

func (c *DriverAPIClient) Fetch(ctx context.Context) ([]entity.Driver, error) {
	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return doGet(ctx, c.client, c.baseURL+"/drivers")
	})
	c.metrics.ObserveExternalCallDuration("driver-api", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	var dtos []driverDTO
	if err := json.Unmarshal(result.([]byte), &dtos); err != nil {
		return nil, fmt.Errorf("decode driver response: %w", err)
	}

	drivers := make([]entity.Driver, 0, len(dtos))
	for _, d := range dtos {
		driver := entity.Driver{
			ID:              d.ID,
			FirstName:       d.FirstName,
			LastName:        d.LastName,
			ProfileImageURL: d.ProfileImageURL,
			CarImageURL:     d.CarImageURL,
			CarSeats:        d.CarSeats,
			Rating:          d.Rating,
			CurrentLocation: geo.GeoPoint{Latitude: d.Latitude, Longitude: d.Longitude},
		}
		if err := driver.Validate(); err != nil {
			// One malformed row must not take down the whole list.
			continue
		}
		drivers = append(drivers, driver)
	}
	return drivers, nil
}
