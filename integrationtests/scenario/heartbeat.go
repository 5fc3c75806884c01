package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/service"
)

const scenarioHeartbeat = "heartbeat"

func init() {
	Register(scenarioHeartbeat, runHeartbeat)
}

// runHeartbeat keeps a one second lease alive past its TTL, then stops renewing and waits for expiry.
func runHeartbeat(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c := NewClient(cfg)
	reg := testRegistration("heartbeat", 9000)

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	done := make(chan error, 1)
	go func() { done <- c.Heartbeat(hbCtx, reg, service.Ptr(1), 250*time.Millisecond) }()

	select {
	case err := <-done:
		return fmt.Errorf("heartbeat stopped early: %w", err)
	case <-time.After(2 * time.Second):
	}
	ids, err := ListIDs(ctx, c, reg.Name)
	if err != nil {
		return err
	}
	if len(ids) != 1 {
		return fmt.Errorf("heartbeat: registration not kept alive, got %v", ids)
	}

	stopHeartbeat()
	if err := <-done; err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	if err := WaitGone(ctx, c, reg.Name, cfg.ExpiryWait); err != nil {
		return fmt.Errorf("after heartbeat stop: %w", err)
	}
	return nil
}
