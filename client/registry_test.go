package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

var testReg = domain.Registration{Name: "billing", Version: "1.2.0", Host: "10.0.0.1", Port: 9000}

const testRegJSON = `{"id":"/billing/1.2.0/10.0.0.1/9000","name":"billing","version":"1.2.0","host":"10.0.0.1","port":9000}`

func TestRegistryHTTP_Panics(t *testing.T) {
	t.Run("baseURL_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "client.registry.go: baseURL is required", func() {
			RegistryHTTP("", &http.Client{})
		})
	})
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "client.registry.go: http client is required", func() {
			RegistryHTTP("http://localhost:8080", nil)
		})
	})
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name          string
		ttl           *int
		statusCode    int
		body          string
		wantBody      string
		wantErr       bool
		wantErrorCode string
	}{
		{
			name:       "success_default_ttl",
			statusCode: http.StatusOK,
			body:       `{"registration":` + testRegJSON + `}`,
			wantBody:   `{"name":"billing","version":"1.2.0","host":"10.0.0.1","port":9000}`,
		},
		{
			name:       "success_with_ttl",
			ttl:        service.Ptr(30),
			statusCode: http.StatusOK,
			body:       `{"registration":` + testRegJSON + `}`,
			wantBody:   `{"name":"billing","version":"1.2.0","host":"10.0.0.1","port":9000,"ttl_seconds":30}`,
		},
		{
			name:          "bad_parameter_decoded",
			statusCode:    http.StatusBadRequest,
			body:          `{"error":{"code":"bad_parameter","message":"name is required"}}`,
			wantErr:       true,
			wantErrorCode: service.ErrBadParameter,
		},
		{
			name:       "non_json_error_body",
			statusCode: http.StatusBadGateway,
			body:       `upstream down`,
			wantErr:    true,
		},
		{
			name:       "missing_registration_field",
			statusCode: http.StatusOK,
			body:       `{}`,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/registrations", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				if tt.wantBody != "" {
					got, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					assert.JSONEq(t, tt.wantBody, string(got))
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := RegistryHTTP(srv.URL, srv.Client())
			got, err := c.Register(context.Background(), testReg, tt.ttl)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrorCode != "" {
					assert.Equal(t, tt.wantErrorCode, service.ToMyErrorCode(err))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/billing/1.2.0/10.0.0.1/9000", got.ID)
			assert.Equal(t, 9000, got.Port)
		})
	}
}

func TestRegistry_Unregister(t *testing.T) {
	tests := []struct {
		name       string
		reg        domain.Registration
		statusCode int
		wantCalls  int
		wantErr    bool
	}{
		{name: "success", reg: testReg, statusCode: http.StatusNoContent, wantCalls: 1},
		{name: "server_error", reg: testReg, statusCode: http.StatusInternalServerError, wantCalls: 1, wantErr: true},
		{name: "invalid_registration_not_sent", reg: domain.Registration{Name: "billing"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := atomic.NewInt32(0)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Inc()
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/v1/registrations/billing/1.2.0/10.0.0.1/9000", r.URL.Path)
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			err := RegistryHTTP(srv.URL, srv.Client()).Unregister(context.Background(), tt.reg)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, int(calls.Load()))
		})
	}
}

func TestRegistry_Registrations(t *testing.T) {
	tests := []struct {
		name       string
		query      domain.Query
		wantQuery  string
		statusCode int
		body       string
		wantLen    int
		wantErr    bool
	}{
		{
			name:       "all",
			statusCode: http.StatusOK,
			body:       `{"registrations":[` + testRegJSON + `]}`,
			wantLen:    1,
		},
		{
			name:       "by_name_and_version",
			query:      domain.Query{Name: "billing", Version: "1.2.0"},
			wantQuery:  "name=billing&version=1.2.0",
			statusCode: http.StatusOK,
			body:       `{"registrations":[]}`,
			wantLen:    0,
		},
		{
			name:       "missing_registrations_field",
			statusCode: http.StatusOK,
			body:       `{}`,
			wantErr:    true,
		},
		{
			name:       "invalid_json",
			statusCode: http.StatusOK,
			body:       `not json`,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := RegistryHTTP(srv.URL, srv.Client()).Registrations(context.Background(), tt.query)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestRegistry_Heartbeat(t *testing.T) {
	t.Run("first_registration_failure_returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":"internal_server_error","message":"an internal server error has occurred"}}`))
		}))
		defer srv.Close()

		err := RegistryHTTP(srv.URL, srv.Client()).Heartbeat(context.Background(), testReg, nil, 10*time.Millisecond)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})

	t.Run("invalid_interval", func(t *testing.T) {
		err := RegistryHTTP("http://localhost:1", &http.Client{}).Heartbeat(context.Background(), testReg, nil, 0)
		require.Error(t, err)
		assert.True(t, service.IsBadParameterError(err))
	})

	t.Run("renews_until_canceled_and_reports_failures", func(t *testing.T) {
		var (
			mu       sync.Mutex
			requests int
			failures []error
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			requests++
			n := requests
			mu.Unlock()
			if n == 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			resp, _ := json.Marshal(map[string]any{"registration": json.RawMessage(testRegJSON)})
			_, _ = w.Write(resp)
		}))
		defer srv.Close()

		c := RegistryHTTP(srv.URL, srv.Client(), WithHeartbeatErrorHandler(func(err error) {
			mu.Lock()
			failures = append(failures, err)
			mu.Unlock()
		}))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- c.Heartbeat(ctx, testReg, service.Ptr(5), 10*time.Millisecond) }()

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return requests >= 4
		}, 2*time.Second, 5*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("heartbeat did not stop after cancel")
		}

		mu.Lock()
		defer mu.Unlock()
		assert.Len(t, failures, 1)
	})
}
