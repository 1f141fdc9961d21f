package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/pkg/metrics"
)

// Client talks to the hosted identity provider over HTTP. Provider error
// responses carry a list of messages; the first one becomes the error text
// shown to the user.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics metrics.Metrics
}

func NewClient(baseURL, apiKey string, m metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "identity",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		metrics: m,
	}
}

type sessionDTO struct {
	Status           string `json:"status"`
	CreatedSessionID string `json:"created_session_id"`
	UserID           string `json:"user_id"`
}

type attemptDTO struct {
	AttemptID string `json:"attempt_id"`
}

type providerError struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) SignIn(ctx context.Context, identifier, secret string) (outbound.SessionResult, error) {
	var dto sessionDTO
	err := c.post(ctx, "/v1/sign_in", map[string]string{
		"identifier": identifier,
		"password":   secret,
	}, &dto)
	if err != nil {
		return outbound.SessionResult{}, err
	}
	return toSessionResult(dto), nil
}

func (c *Client) SignUp(ctx context.Context, email, secret string) (outbound.PendingVerification, error) {
	var dto attemptDTO
	err := c.post(ctx, "/v1/sign_up", map[string]string{
		"email_address": email,
		"password":      secret,
	}, &dto)
	if err != nil {
		return outbound.PendingVerification{}, err
	}
	return outbound.PendingVerification{AttemptID: dto.AttemptID}, nil
}

func (c *Client) Verify(ctx context.Context, attemptID, code string) (outbound.SessionResult, error) {
	var dto sessionDTO
	err := c.post(ctx, "/v1/sign_up/"+attemptID+"/verify", map[string]string{
		"code": code,
	}, &dto)
	if err != nil {
		return outbound.SessionResult{}, err
	}
	return toSessionResult(dto), nil
}

func (c *Client) SignOut(ctx context.Context, sessionID string) error {
	return c.post(ctx, "/v1/sessions/"+sessionID+"/revoke", nil, nil)
}

func toSessionResult(dto sessionDTO) outbound.SessionResult {
	status := outbound.SessionNeedsSteps
	if dto.Status == "complete" {
		status = outbound.SessionComplete
	}
	return outbound.SessionResult{
		Status:    status,
		SessionID: dto.CreatedSessionID,
		UserID:    dto.UserID,
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	start := time.Now()
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.doPost(ctx, path, body, out)
	})
	c.metrics.ObserveExternalCallDuration("identity", err == nil, time.Since(start).Seconds())
	return err
}

func (c *Client) doPost(ctx context.Context, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var perr providerError
		if json.Unmarshal(raw, &perr) == nil && len(perr.Errors) > 0 {
			return errors.New(perr.Errors[0].Message)
		}
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode identity response: %w", err)
		}
	}
	return nil
}
