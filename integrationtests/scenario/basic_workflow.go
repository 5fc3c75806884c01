package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/service"
)

const scenarioBasicWorkflow = "basic_workflow"

func init() {
	Register(scenarioBasicWorkflow, runBasicWorkflow)
}

func runBasicWorkflow(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c := NewClient(cfg)
	first := testRegistration("basic", 9001)
	second := first
	second.Port = 9002

	// 1. Register two instances of the same service
	reg1, err := c.Register(ctx, first, service.Ptr(30))
	if err != nil {
		return fmt.Errorf("register first: %w", err)
	}
	reg2, err := c.Register(ctx, second, service.Ptr(30))
	if err != nil {
		return fmt.Errorf("register second: %w", err)
	}
	if reg1.Meta["scenario"] != "basic" {
		return fmt.Errorf("register: meta not echoed, got %v", reg1.Meta)
	}

	// 2. Both are listed, sorted by id
	if err := ExpectIDs(ctx, c, first.Name, reg1.ID, reg2.ID); err != nil {
		return err
	}

	// 3. Renewal keeps a single entry
	if _, err := c.Register(ctx, first, service.Ptr(30)); err != nil {
		return fmt.Errorf("renew first: %w", err)
	}
	if err := ExpectIDs(ctx, c, first.Name, reg1.ID, reg2.ID); err != nil {
		return fmt.Errorf("after renewal: %w", err)
	}

	// 4. Unregister, twice to check it is idempotent
	for i := 0; i < 2; i++ {
		if err := c.Unregister(ctx, first); err != nil {
			return fmt.Errorf("unregister first (attempt %d): %w", i+1, err)
		}
	}
	if err := ExpectIDs(ctx, c, first.Name, reg2.ID); err != nil {
		return fmt.Errorf("after unregister: %w", err)
	}

	if err := c.Unregister(ctx, second); err != nil {
		return fmt.Errorf("unregister second: %w", err)
	}
	return ExpectIDs(ctx, c, first.Name)
}
