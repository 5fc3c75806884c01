package myredis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RunReaper(t *testing.T) {
	ctx := context.Background()

	t.Run("end to end expiry", func(t *testing.T) {
		env := setupTestRegistry(t)
		id := "/svc/1.0.0/10.0.0.1/9000"

		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))
		online := env.publisher.OnlineCalls()
		require.Len(t, online, 1)
		assert.Equal(t, id, online[0].Reg.ID)
		assert.Equal(t, 9000, online[0].Reg.Port)

		regs, err := env.registry.GetRegistrations(ctx, domain.Query{Name: "svc", Version: "1.0.0"})
		require.NoError(t, err)
		require.Len(t, regs, 1)

		env.clock.Advance(1200 * time.Millisecond)
		reaped, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{id}, reaped)

		regs, err = env.registry.GetRegistrations(ctx, domain.Query{})
		require.NoError(t, err)
		assert.Empty(t, regs)
		assert.False(t, env.srv.Exists(id))
		members, _ := env.srv.ZMembers(DefaultIndexKey)
		assert.Empty(t, members)

		offline := env.publisher.OfflineCalls()
		require.Len(t, offline, 1)
		assert.Equal(t, id, offline[0].ID)
	})

	t.Run("live registrations are kept", func(t *testing.T) {
		env := setupTestRegistry(t)
		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))

		env.clock.Advance(999 * time.Millisecond)
		reaped, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Empty(t, reaped)

		regs, err := env.registry.GetRegistrations(ctx, domain.Query{Name: "svc", Version: "1.0.0"})
		require.NoError(t, err)
		assert.Len(t, regs, 1)
	})

	t.Run("second update ttl decides expiry", func(t *testing.T) {
		env := setupTestRegistry(t)
		id := "/svc/1.0.0/10.0.0.1/9000"
		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(5)}))
		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))

		env.clock.Advance(500 * time.Millisecond)
		reaped, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Empty(t, reaped)

		env.clock.Advance(500 * time.Millisecond)
		reaped, err = env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{id}, reaped)
	})

	t.Run("renewal before sweep keeps registration", func(t *testing.T) {
		env := setupTestRegistry(t)
		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))

		env.clock.Advance(2 * time.Second)
		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))

		reaped, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Empty(t, reaped)
	})

	t.Run("batches of at most 100", func(t *testing.T) {
		env := setupTestRegistry(t)
		for i := 0; i < 150; i++ {
			reg := domain.Registration{Name: "svc", Version: "1.0.0", Host: fmt.Sprintf("10.0.%d.%d", i/256, i%256), Port: 9000}
			require.NoError(t, env.registry.Update(ctx, reg, domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))
		}
		env.clock.Advance(2 * time.Second)

		first, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Len(t, first, ReapBatchSize)

		second, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Len(t, second, 50)
		assert.NotContains(t, second, first[0])

		third, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Empty(t, third)

		regs, err := env.registry.GetRegistrations(ctx, domain.Query{})
		require.NoError(t, err)
		assert.Empty(t, regs)
		assert.Equal(t, 150.0, testutil.ToFloat64(env.metrics.Reaped))
	})

	t.Run("orphaned data key stays when index entry is gone", func(t *testing.T) {
		env := setupTestRegistry(t)
		id := "/svc/1.0.0/10.0.0.1/9000"
		require.NoError(t, env.registry.Update(ctx, testRegistration(), domain.UpdateOptions{TTLSeconds: service.Ptr(1)}))
		env.srv.ZRem(DefaultIndexKey, id)

		env.clock.Advance(2 * time.Second)
		reaped, err := env.registry.RunReaper(ctx)
		require.NoError(t, err)
		assert.Empty(t, reaped)
		assert.True(t, env.srv.Exists(id))
	})

	t.Run("sweep failure returns empty and error", func(t *testing.T) {
		env := setupTestRegistry(t)
		require.NoError(t, env.srv.Set(DefaultIndexKey, "not a sorted set"))

		reaped, err := env.registry.RunReaper(ctx)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
		assert.NotNil(t, reaped)
		assert.Empty(t, reaped)
		assert.Empty(t, env.publisher.OfflineCalls())
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ReaperErrors))
	})

	t.Run("unreachable store", func(t *testing.T) {
		env := setupTestRegistry(t)
		env.srv.Close()

		reaped, err := env.registry.RunReaper(ctx)
		require.Error(t, err)
		assert.Empty(t, reaped)
	})
}

func TestToStrings(t *testing.T) {
	got, err := toStrings([]interface{}{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = toStrings("a")
	require.Error(t, err)

	_, err = toStrings([]interface{}{int64(1)})
	require.Error(t, err)
}
