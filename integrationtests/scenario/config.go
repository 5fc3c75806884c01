package scenario

import "time"

// Config holds settings for running a scenario against a live registry.
type Config struct {
	RegistryURL string
	// ExpiryWait bounds how long scenarios wait for the reaper to remove an expired lease.
	ExpiryWait time.Duration
}
