package myredis

import (
	"context"
	"fmt"

	"myregistry/service"

	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

// ReapBatchSize caps how many expired registrations one RunReaper call removes.
const ReapBatchSize = 100

// reapScript selects up to ARGV[2] members with score <= ARGV[1] and removes exactly those members, never by rank.
var reapScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', '0', ARGV[2])
if #ids > 0 then
	redis.call('ZREM', KEYS[1], unpack(ids))
end
return ids
`)

// RunReaper atomically pops one batch of expired ids from the expiry index and then deletes their data keys.
// The cascading deletes are not part of the atomic step: a crash in between leaves orphaned data keys.
// Callers must repeat the call until it returns an empty batch to catch up.
func (r *Registry) RunReaper(ctx context.Context) ([]string, error) {
	now := r.now().UnixMilli()
	res, err := reapScript.Run(ctx, r.client, []string{r.indexKey}, now, ReapBatchSize).Result()
	if err != nil {
		r.metrics.ReaperErrors.Inc()
		level.Error(r.logger).Log("msg", "Expiry index sweep failed", "err", err)
		return []string{}, service.NewInternalServerError("Redis reaper script error", fmt.Errorf("can't sweep expiry index (key='%s'), err: %w", r.indexKey, err))
	}

	ids, err := toStrings(res)
	if err != nil {
		r.metrics.ReaperErrors.Inc()
		level.Error(r.logger).Log("msg", "Expiry index sweep returned unexpected reply", "err", err)
		return []string{}, service.NewInternalServerError("Redis reaper script error", err)
	}

	for _, id := range ids {
		if err := r.Del(ctx, id); err != nil {
			level.Warn(r.logger).Log("msg", "Failed to delete reaped registration", "id", id, "err", err)
		}
	}

	if len(ids) > 0 {
		r.metrics.Reaped.Add(float64(len(ids)))
		level.Debug(r.logger).Log("msg", fmt.Sprintf("reaped %d registrations", len(ids)), "detail", fmt.Sprint(ids))
	}

	return ids, nil
}

func toStrings(res interface{}) ([]string, error) {
	items, ok := res.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected reaper reply type %T", res)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected reaper reply item type %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
