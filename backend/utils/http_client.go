package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"projectflow/backend/logging"

	"github.com/sony/gobreaker"
)

// NewHTTPClient returns the client used for service-to-service calls.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// NewBreaker trips after more than three consecutive failures.
func NewBreaker(name string, timeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
}

// ServiceClient calls one downstream service through its own circuit breaker.
type ServiceClient struct {
	BaseURL string
	Client  *http.Client
	Breaker *gobreaker.CircuitBreaker
}

func NewServiceClient(name, baseURL string, client *http.Client) *ServiceClient {
	if client == nil {
		client = NewHTTPClient()
	}
	return &ServiceClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Breaker: NewBreaker(name, 5*time.Second),
	}
}

// StatusError is a non-2xx answer from a downstream service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("downstream error (%d): %s", e.StatusCode, e.Body)
}

// GetJSON decodes the body of GET path into out. headers are copied onto the request.
func (c *ServiceClient) GetJSON(ctx context.Context, path string, headers http.Header, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, headers, nil, out)
}

// PostJSON sends body as JSON and decodes the answer into out when out is not nil.
func (c *ServiceClient) PostJSON(ctx context.Context, path string, headers http.Header, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, headers, body, out)
}

func (c *ServiceClient) do(ctx context.Context, method, path string, headers http.Header, body, out interface{}) error {
	_, err := c.Breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("failed to encode request body: %w", err)
			}
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("error creating request: %w", err)
		}
		for key, values := range headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("error sending request to %s: %w", c.BaseURL, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg, _ := io.ReadAll(resp.Body)
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil, nil
	})
	return err
}
