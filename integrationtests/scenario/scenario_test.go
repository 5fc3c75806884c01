package scenario

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"myregistry/adapters/myredis"
	"myregistry/api"
	"myregistry/events"
	"myregistry/handlers"
	"myregistry/scheduler"
	"myregistry/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startRegistry wires a full registry (redis store, reaper, validated HTTP API) on top of miniredis.
func startRegistry(t *testing.T) *Config {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	registry := myredis.NewRegistry(client, events.NewEmitter(), log.NewNopLogger())

	reaper, err := scheduler.NewReaper(registry, 50*time.Millisecond, log.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, reaper.Start(context.Background()))
	t.Cleanup(func() { reaper.Stop(context.Background()) })

	validator, err := handlers.NewRequestValidator(api.Spec)
	require.NoError(t, err)
	e := echo.New()
	service.RegisterErrorHandler(e, log.NewNopLogger())
	e.Use(validator)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(registry, log.NewNopLogger()))

	httpSrv := httptest.NewServer(e)
	t.Cleanup(httpSrv.Close)

	return &Config{RegistryURL: httpSrv.URL, ExpiryWait: 5 * time.Second}
}

func TestScenarios(t *testing.T) {
	if testing.Short() {
		t.Skip("scenarios wait for real lease expiry")
	}
	cfg := startRegistry(t)

	names := Names()
	require.ElementsMatch(t, []string{scenarioBasicWorkflow, scenarioLeaseExpiry, scenarioHeartbeat, scenarioBadParameter}, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Run(name, context.Background(), cfg))
		})
	}
}

func TestRun_UnknownScenario(t *testing.T) {
	err := Run("does_not_exist", context.Background(), &Config{})
	var unknown *UnknownScenarioError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "does_not_exist", unknown.Name)
	assert.Equal(t, "unknown scenario: does_not_exist", err.Error())
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	delete(all, scenarioBasicWorkflow)
	assert.Contains(t, All(), scenarioBasicWorkflow)
}
