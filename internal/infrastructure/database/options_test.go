package database

import (
	"testing"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/config"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(&config.RedisConfig{Host: "cache", Port: 6380, DB: 2, PoolSize: 20})
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
	assert.Equal(t, connectTimeout, opts.DialTimeout)

	opts = redisOptions(&config.RedisConfig{Host: "cache", Port: 6379})
	assert.Zero(t, opts.PoolSize)
	assert.Zero(t, opts.MinIdleConns)
}

func TestApplyPool(t *testing.T) {
	// Open does not dial, so no server is needed.
	db, err := sqlx.Open("postgres", "host=localhost dbname=none sslmode=disable")
	require.NoError(t, err)
	defer db.Close()

	applyPool(db, &config.DatabaseConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}
