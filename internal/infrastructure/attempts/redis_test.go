package attempts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"saukstas/internal/domain/model"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("Failed to start redis container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	return "redis://" + endpoint + "/0"
}

func TestRedisStore(t *testing.T) {
	uri := setupRedis(t)
	ctx := context.Background()

	s, err := NewRedisStore(Config{URI: uri, Prefix: "test:", Timeout: 2000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	empty, err := s.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, model.LoginAttempts{}, empty)

	locked := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)
	saved, err := s.Update(ctx, "admin", time.Hour, func(_ model.LoginAttempts) model.LoginAttempts {
		return model.LoginAttempts{Failures: 5, LockedUntil: locked}
	})
	require.NoError(t, err)
	assert.Equal(t, 5, saved.Failures)

	got, err := s.Load(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Failures)
	assert.True(t, locked.Equal(got.LockedUntil))

	ttl, err := s.client.TTL(ctx, "test:admin").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, s.Clear(ctx, "admin"))
	got, err = s.Load(ctx, "admin")
	require.NoError(t, err)
	assert.Zero(t, got.Failures)
}

func TestRedisStoreConcurrentUpdates(t *testing.T) {
	uri := setupRedis(t)
	ctx := context.Background()

	stores := make([]*RedisStore, 2)
	for i := range stores {
		s, err := NewRedisStore(Config{URI: uri, Prefix: "test:", Timeout: 5000})
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		stores[i] = s
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := stores[i%2].Update(ctx, "shared", time.Hour, bump)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := stores[0].Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Failures)
}
