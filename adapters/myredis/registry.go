package myredis

import (
	"context"
	"fmt"
	"time"

	"myregistry/domain"
	"myregistry/interfaces"
	"myregistry/metrics"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
)

const (
	// DefaultIndexKey is the sorted set mapping registration id to expiry (epoch ms).
	DefaultIndexKey = "__registry.expiry"
	// DefaultTTLSeconds is the lease used when an update does not carry one.
	DefaultTTLSeconds = 10
)

// Registry is the redis implementation of interfaces.Registry.
// Every registration lives under its id key and has exactly one expiry index entry.
type Registry struct {
	client     redis.UniversalClient
	publisher  interfaces.Publisher
	logger     log.Logger
	metrics    *metrics.Metrics
	indexKey   string
	defaultTTL int
	now        func() time.Time
}

var _ interfaces.Registry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithIndexKey overrides the expiry index key.
func WithIndexKey(key string) Option {
	return func(r *Registry) { r.indexKey = key }
}

// WithDefaultTTL sets the lease in seconds used when UpdateOptions.TTLSeconds is nil.
func WithDefaultTTL(seconds int) Option {
	return func(r *Registry) { r.defaultTTL = seconds }
}

// WithClock replaces time.Now, e.g. with a fixed clock in tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithMetrics makes the registry count mutations in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry creates a redis backed registry that reports changes to publisher.
func NewRegistry(client redis.UniversalClient, publisher interfaces.Publisher, logger log.Logger, opts ...Option) *Registry {
	r := &Registry{
		client:     client,
		publisher:  publisher,
		logger:     log.WithPrefix(logger, "component", "Registry"),
		metrics:    metrics.New(nil),
		indexKey:   DefaultIndexKey,
		defaultTTL: DefaultTTLSeconds,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Update stores reg and pushes its expiry to now+TTL in one MULTI/EXEC.
// "online" is published only after EXEC succeeded.
func (r *Registry) Update(ctx context.Context, raw domain.Registration, opts domain.UpdateOptions) error {
	reg, err := domain.NewRegistration(raw)
	if err != nil {
		return fmt.Errorf("update failed to normalize registration, err: %w", err)
	}

	ttl := service.ValueOr(opts.TTLSeconds, r.defaultTTL)
	if err := domain.ValidateTTL(ttl); err != nil {
		return err
	}

	payload, err := domain.Stringify(reg)
	if err != nil {
		return service.NewInternalServerError("Registration marshal error", err)
	}

	expiry := r.now().UnixMilli() + int64(ttl)*1000
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, reg.ID, payload, 0)
		pipe.ZAdd(ctx, r.indexKey, &redis.Z{Score: float64(expiry), Member: reg.ID})
		return nil
	})
	if err != nil {
		return service.NewInternalServerError("Redis update transaction error", fmt.Errorf("can't store registration (key='%s'), err: %w", reg.ID, err))
	}

	r.metrics.Registrations.Inc()
	r.publisher.Online(reg)
	return nil
}

// Del removes the registration and its expiry entry in one MULTI/EXEC.
// "offline" is published after EXEC succeeded, whether or not id existed.
func (r *Registry) Del(ctx context.Context, id string) error {
	if !domain.IsRegistrationID(id) {
		return service.NewBadParameterError(fmt.Sprintf("%q is not a registration id", id), nil)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, id)
		pipe.ZRem(ctx, r.indexKey, id)
		return nil
	})
	if err != nil {
		return service.NewInternalServerError("Redis delete transaction error", fmt.Errorf("can't delete registration (key='%s'), err: %w", id, err))
	}

	r.metrics.Deregistrations.Inc()
	r.publisher.Offline(id)
	return nil
}

// ClearDB flushes the selected database. Everything in it is lost, registry or not.
func (r *Registry) ClearDB(ctx context.Context) error {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		return service.NewInternalServerError("Redis flush error", fmt.Errorf("can't flush database, err: %w", err))
	}
	return nil
}
