package domain

import (
	"encoding/json"
	"fmt"

	"myregistry/service"
)

// Stringify serializes a registration for storage.
func Stringify(r Registration) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("can't marshal registration %q, err: %w", r.ID, err)
	}
	return b, nil
}

// Parse decodes a stored registration. The stored id must agree with the fields it was built from.
func Parse(b []byte) (Registration, error) {
	var r Registration
	if err := json.Unmarshal(b, &r); err != nil {
		return Registration{}, fmt.Errorf("can't unmarshal registration, err: %w", err)
	}

	canonical, err := NewRegistration(r)
	if err != nil {
		return Registration{}, fmt.Errorf("stored registration %q is invalid, err: %w", r.ID, err)
	}
	if r.ID != "" && r.ID != canonical.ID {
		return Registration{}, service.NewBadParameterError(fmt.Sprintf("stored id %q does not match fields (%q)", r.ID, canonical.ID), nil)
	}

	return canonical, nil
}
