// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/warband-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		mr.Close()
	}

	return client, cleanup
}

// CreateTestRedisClientWithSetup creates an in-memory Redis client and lets
// the test populate it before use
func CreateTestRedisClientWithSetup(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	if setupFunc != nil {
		setupFunc(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		mr.Close()
	}

	return client, cleanup
}
