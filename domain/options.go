package domain

import (
	"fmt"

	"myregistry/service"
)

// MaxTTLSeconds caps a single lease at one year.
const MaxTTLSeconds = 365 * 24 * 60 * 60

// UpdateOptions tunes a single registration update.
type UpdateOptions struct {
	// TTLSeconds is the lease length. nil means the configured default; an explicit value must be in [1, MaxTTLSeconds].
	TTLSeconds *int
}

// Query narrows a registration listing. Empty fields are omitted; Version requires Name.
type Query struct {
	Name    string
	Version string
}

// ValidateTTL returns service.BadParameterError unless 1 <= ttl <= MaxTTLSeconds.
func ValidateTTL(ttl int) error {
	if ttl <= 0 {
		return service.NewBadParameterError(fmt.Sprintf("ttl_seconds must be positive, got %d", ttl), nil)
	}
	if ttl > MaxTTLSeconds {
		return service.NewBadParameterError(fmt.Sprintf("ttl_seconds must be at most %d, got %d", MaxTTLSeconds, ttl), nil)
	}
	return nil
}
