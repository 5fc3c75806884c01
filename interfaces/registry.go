package interfaces

import (
	"context"

	"myregistry/domain"
)

// Registry stores leased service registrations and reclaims expired ones.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Update creates or renews a registration with expiry now+TTL.
	// Returns:
	// 1) nil on success;
	// 2) bad_parameter when the registration or TTL is invalid (nothing is written);
	// 3) internal_server_error when the storage transaction fails.
	Update(ctx context.Context, reg domain.Registration, opts domain.UpdateOptions) error

	// Del removes a registration and its expiry entry. Missing ids are not an error.
	// Returns:
	// 1) nil on success;
	// 2) bad_parameter when id is not a registration id;
	// 3) internal_server_error when the storage transaction fails.
	Del(ctx context.Context, id string) error

	// GetRegistrations lists live registrations, optionally narrowed by name and version.
	// Returns:
	// 1) (items, nil), items is empty when nothing matches;
	// 2) (nil, bad_parameter) when version is set without name;
	// 3) (nil, internal_server_error) when listing, fetching or decoding fails.
	GetRegistrations(ctx context.Context, q domain.Query) ([]domain.Registration, error)

	// RunReaper removes up to one batch of expired registrations and returns their ids.
	// On sweep failure returns (empty, internal_server_error).
	RunReaper(ctx context.Context) ([]string, error)

	// ClearDB erases the whole backing database, including non-registry keys.
	ClearDB(ctx context.Context) error
}
