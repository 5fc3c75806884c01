// Package client talks to MyRegistry over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"myregistry/domain"
	"myregistry/service"
)

// DefaultRequestTimeout bounds every call made by the client.
const DefaultRequestTimeout = 5 * time.Second

// Registry is an HTTP client for the registry API: POST/GET baseURL/v1/registrations and
// DELETE baseURL/v1/registrations/{name}/{version}/{host}/{port}.
type Registry struct {
	baseURL          string
	client           *http.Client
	requestTimeout   time.Duration
	onHeartbeatError func(error)
}

// Option configures a Registry client.
type Option func(*Registry)

// WithRequestTimeout overrides DefaultRequestTimeout.
func WithRequestTimeout(d time.Duration) Option {
	return func(r *Registry) { r.requestTimeout = d }
}

// WithHeartbeatErrorHandler receives renewal failures that Heartbeat does not return.
func WithHeartbeatErrorHandler(fn func(error)) Option {
	return func(r *Registry) { r.onHeartbeatError = fn }
}

// RegistryHTTP creates a client for the registry at baseURL (e.g. http://myregistry:8080, no trailing slash).
// Panics on empty baseURL or nil client.
func RegistryHTTP(baseURL string, client *http.Client, opts ...Option) *Registry {
	r := &Registry{
		baseURL:          service.StrPanic(baseURL, "client.registry.go: baseURL is required"),
		client:           service.NilPanic(client, "client.registry.go: http client is required"),
		requestTimeout:   DefaultRequestTimeout,
		onHeartbeatError: func(error) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type registerRequest struct {
	Name       string            `json:"name"`
	Version    string            `json:"version"`
	Host       string            `json:"host"`
	Port       int               `json:"port"`
	Meta       map[string]string `json:"meta,omitempty"`
	TTLSeconds *int              `json:"ttl_seconds,omitempty"`
}

type registrationResponse struct {
	Registration *domain.Registration `json:"registration"`
}

type registrationsResponse struct {
	Registrations []domain.Registration `json:"registrations"`
}

type errorResponse struct {
	Error *service.MyError `json:"error"`
}

// Register creates or renews reg. A nil ttlSeconds lets the server apply its default lease.
// Returns the canonical registration stored by the server.
func (r *Registry) Register(ctx context.Context, reg domain.Registration, ttlSeconds *int) (domain.Registration, error) {
	body, err := json.Marshal(registerRequest{
		Name:       reg.Name,
		Version:    reg.Version,
		Host:       reg.Host,
		Port:       reg.Port,
		Meta:       reg.Meta,
		TTLSeconds: ttlSeconds,
	})
	if err != nil {
		return domain.Registration{}, err
	}

	var out registrationResponse
	if err := r.do(ctx, http.MethodPost, "/v1/registrations", body, http.StatusOK, &out); err != nil {
		return domain.Registration{}, err
	}
	if out.Registration == nil {
		return domain.Registration{}, fmt.Errorf("registry response missing registration field")
	}
	return *out.Registration, nil
}

// Unregister removes reg. Unregistering a registration that does not exist succeeds.
func (r *Registry) Unregister(ctx context.Context, reg domain.Registration) error {
	reg, err := domain.NewRegistration(reg)
	if err != nil {
		return err
	}

	path := "/v1/registrations/" + url.PathEscape(reg.Name) + "/" + url.PathEscape(reg.Version) +
		"/" + url.PathEscape(reg.Host) + "/" + strconv.Itoa(reg.Port)
	return r.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

// Registrations lists live registrations matching q. The result is never nil.
func (r *Registry) Registrations(ctx context.Context, q domain.Query) ([]domain.Registration, error) {
	params := url.Values{}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Version != "" {
		params.Set("version", q.Version)
	}
	path := "/v1/registrations"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out registrationsResponse
	if err := r.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	if out.Registrations == nil {
		return nil, fmt.Errorf("registry response missing registrations field")
	}
	return out.Registrations, nil
}

// Heartbeat registers reg and renews it every interval until ctx is done.
// A failure of the first registration is returned. Later renewal failures go to the
// WithHeartbeatErrorHandler callback and are retried on the next tick.
// Returns nil once ctx is done.
func (r *Registry) Heartbeat(ctx context.Context, reg domain.Registration, ttlSeconds *int, interval time.Duration) error {
	if interval <= 0 {
		return service.NewBadParameterError("heartbeat interval must be positive", nil)
	}
	if _, err := r.Register(ctx, reg, ttlSeconds); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.Register(ctx, reg, ttlSeconds); err != nil && ctx.Err() == nil {
				r.onHeartbeatError(err)
			}
		}
	}
}

// do sends one request and decodes a JSON body into out when out is not nil.
// Error responses are decoded into *service.MyError when the body carries one.
func (r *Registry) do(ctx context.Context, method, path string, body []byte, wantStatus int, out any) error {
	ctx, cancel := context.WithTimeout(ctx, r.requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == nil {
		return fmt.Errorf("registry returned %d", resp.StatusCode)
	}
	return fmt.Errorf("registry returned %d: %w", resp.StatusCode, body.Error)
}
