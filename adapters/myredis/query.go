package myredis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"myregistry/domain"
	"myregistry/service"
)

// GetRegistrations scans keys under the name/version prefix and bulk-fetches the registrations.
// The cost grows with the total number of keys in the database, not with the result size.
func (r *Registry) GetRegistrations(ctx context.Context, q domain.Query) ([]domain.Registration, error) {
	pattern, err := keyPattern(q)
	if err != nil {
		return nil, err
	}

	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error (pattern='%s'), err: %w", pattern, err))
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if domain.IsRegistrationID(k) {
			ids = append(ids, k)
		}
	}
	if len(ids) == 0 {
		return []domain.Registration{}, nil
	}
	sort.Strings(ids)

	values, err := r.client.MGet(ctx, ids...).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis mget error", fmt.Errorf("redis mget error (%d keys), err: %w", len(ids), err))
	}

	regs := make([]domain.Registration, 0, len(values))
	for i, v := range values {
		// deleted between KEYS and MGET
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, service.NewInternalServerError("Redis mget error", fmt.Errorf("unexpected value type %T (key='%s')", v, ids[i]))
		}
		reg, err := domain.Parse([]byte(s))
		if err != nil {
			// corrupt stored data is an internal error, not a bad parameter
			return nil, service.NewMyError(service.ErrInternalServerError, "Registration decode error", fmt.Errorf("can't decode registration (key='%s'), err: %w", ids[i], err))
		}
		regs = append(regs, reg)
	}

	return regs, nil
}

func keyPattern(q domain.Query) (string, error) {
	switch {
	case q.Name == "" && q.Version != "":
		return "", service.NewBadParameterError("version filter requires name", nil)
	case q.Name == "":
		return "/*", nil
	case q.Version == "":
		return "/" + escapeGlob(q.Name) + "/*", nil
	default:
		return "/" + escapeGlob(q.Name) + "/" + escapeGlob(q.Version) + "/*", nil
	}
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
