package scenario

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"myregistry/client"
	"myregistry/domain"
)

const (
	serviceNamePrefix = "integration-test"
	pollInterval      = 100 * time.Millisecond
)

// NewClient creates a registry client for cfg.RegistryURL.
func NewClient(cfg *Config) *client.Registry {
	return client.RegistryHTTP(cfg.RegistryURL, &http.Client{Timeout: 10 * time.Second})
}

// testRegistration returns a registration with a service name unique to this run.
func testRegistration(suffix string, port int) domain.Registration {
	return domain.Registration{
		Name:    serviceNamePrefix + "-" + suffix + "-" + time.Now().Format("20060102150405.000000"),
		Version: "1.0.0",
		Host:    "127.0.0.1",
		Port:    port,
		Meta:    map[string]string{"scenario": suffix},
	}
}

// ListIDs returns the ids registered under name.
func ListIDs(ctx context.Context, c *client.Registry, name string) ([]string, error) {
	regs, err := c.Registrations(ctx, domain.Query{Name: name})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	ids := make([]string, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// ExpectIDs fails unless exactly want is registered under name, in order.
func ExpectIDs(ctx context.Context, c *client.Registry, name string, want ...string) error {
	got, err := ListIDs(ctx, c, name)
	if err != nil {
		return err
	}
	if len(got) != len(want) {
		return fmt.Errorf("list %s: got %v, want %v", name, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("list %s: got %v, want %v", name, got, want)
		}
	}
	return nil
}

// WaitGone polls until nothing is registered under name or wait elapses.
func WaitGone(ctx context.Context, c *client.Registry, name string, wait time.Duration) error {
	deadline := time.Now().Add(wait)
	for {
		ids, err := ListIDs(ctx, c, name)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s still registered after %s: %v", name, wait, ids)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
