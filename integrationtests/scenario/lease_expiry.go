package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/service"
)

const scenarioLeaseExpiry = "lease_expiry"

func init() {
	Register(scenarioLeaseExpiry, runLeaseExpiry)
}

// runLeaseExpiry registers a one second lease and waits for the reaper to remove it.
func runLeaseExpiry(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c := NewClient(cfg)
	reg, err := c.Register(ctx, testRegistration("expiry", 9000), service.Ptr(1))
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := ExpectIDs(ctx, c, reg.Name, reg.ID); err != nil {
		return fmt.Errorf("before expiry: %w", err)
	}

	if err := WaitGone(ctx, c, reg.Name, cfg.ExpiryWait); err != nil {
		return fmt.Errorf("lease expiry: %w", err)
	}
	return nil
}
