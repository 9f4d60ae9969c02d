package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/platform/config"
)

func TestNewWithoutURL(t *testing.T) {
	client, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestOptions(t *testing.T) {
	t.Run("applies pool settings", func(t *testing.T) {
		opts, err := options(config.RedisConfig{
			URL:         "redis://cache:6380/2",
			PoolSize:    7,
			DialTimeout: 2 * time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, 7, opts.PoolSize)
		assert.Equal(t, 2*time.Second, opts.DialTimeout)
	})

	t.Run("rejects a bad url", func(t *testing.T) {
		_, err := options(config.RedisConfig{URL: "http://nope"})
		assert.ErrorContains(t, err, "parse redis URL")
	})
}
