package domain

import (
	"fmt"
	"strconv"
	"strings"

	"myregistry/service"
)

const idSeparator = "/"

// Registration represents one live service instance stored by MyRegistry.
// ID is derived from Name, Version, Host and Port and is also the storage key.
type Registration struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Host    string            `json:"host"`
	Port    int               `json:"port"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// NewRegistration validates raw fields and builds a canonical Registration.
// Any ID set on raw is ignored and recomputed.
// Returns service.BadParameterError on validation failure.
func NewRegistration(raw Registration) (Registration, error) {
	if err := validateSegment("name", raw.Name); err != nil {
		return Registration{}, err
	}
	if err := validateSegment("version", raw.Version); err != nil {
		return Registration{}, err
	}
	if err := validateSegment("host", raw.Host); err != nil {
		return Registration{}, err
	}
	if raw.Port < 1 || raw.Port > 65535 {
		return Registration{}, service.NewBadParameterError(fmt.Sprintf("port must be in 1..65535, got %d", raw.Port), nil)
	}

	return Registration{
		ID:      BuildID(raw.Name, raw.Version, raw.Host, raw.Port),
		Name:    raw.Name,
		Version: raw.Version,
		Host:    raw.Host,
		Port:    raw.Port,
		Meta:    raw.Meta,
	}, nil
}

// BuildID returns the canonical identifier /name/version/host/port.
func BuildID(name, version, host string, port int) string {
	return idSeparator + strings.Join([]string{name, version, host, strconv.Itoa(port)}, idSeparator)
}

// ParseID splits a canonical identifier back into its fields.
func ParseID(id string) (name, version, host string, port int, err error) {
	if !strings.HasPrefix(id, idSeparator) {
		return "", "", "", 0, service.NewBadParameterError("registration id must start with '/'", nil)
	}
	parts := strings.Split(id[1:], idSeparator)
	if len(parts) != 4 {
		return "", "", "", 0, service.NewBadParameterError(fmt.Sprintf("registration id must have 4 segments, got %d", len(parts)), nil)
	}
	for _, p := range parts[:3] {
		if p == "" {
			return "", "", "", 0, service.NewBadParameterError("registration id has an empty segment", nil)
		}
	}
	port, err = strconv.Atoi(parts[3])
	if err != nil || port < 1 || port > 65535 || strconv.Itoa(port) != parts[3] {
		return "", "", "", 0, service.NewBadParameterError(fmt.Sprintf("registration id has invalid port %q", parts[3]), err)
	}

	return parts[0], parts[1], parts[2], port, nil
}

// IsRegistrationID reports whether key is a canonical registration identifier.
// Used to tell registrations apart from other keys sharing the database.
func IsRegistrationID(key string) bool {
	_, _, _, _, err := ParseID(key)
	return err == nil
}

func validateSegment(field, value string) error {
	if value == "" {
		return service.NewBadParameterError(field+" is required", nil)
	}
	if strings.Contains(value, idSeparator) {
		return service.NewBadParameterError(field+" must not contain '/'", nil)
	}
	return nil
}
