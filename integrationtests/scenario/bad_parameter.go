package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/domain"
	"myregistry/service"
)

const scenarioBadParameter = "bad_parameter"

func init() {
	Register(scenarioBadParameter, runBadParameter)
}

// runBadParameter checks that malformed input is rejected with bad_parameter and stores nothing.
func runBadParameter(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c := NewClient(cfg)
	valid := testRegistration("badparam", 9000)

	cases := []struct {
		name string
		reg  domain.Registration
		ttl  *int
	}{
		{name: "port zero", reg: withPort(valid, 0)},
		{name: "port too large", reg: withPort(valid, 70000)},
		{name: "empty host", reg: withHost(valid, "")},
		{name: "zero ttl", reg: valid, ttl: service.Ptr(0)},
	}
	for _, tc := range cases {
		_, err := c.Register(ctx, tc.reg, tc.ttl)
		if !service.IsBadParameterError(err) {
			return fmt.Errorf("register %s: want bad_parameter, got %v", tc.name, err)
		}
	}

	if _, err := c.Registrations(ctx, domain.Query{Version: "1.0.0"}); !service.IsBadParameterError(err) {
		return fmt.Errorf("list version without name: want bad_parameter, got %v", err)
	}

	return ExpectIDs(ctx, c, valid.Name)
}

func withPort(r domain.Registration, port int) domain.Registration {
	r.Port = port
	return r
}

func withHost(r domain.Registration, host string) domain.Registration {
	r.Host = host
	return r
}
