package adapter

import (
	"context"
	"testing"
	"time"

	"campus-quiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectGet("campusquiz:quiz:leaderboard:javascript").SetVal(`[{"name":"Alice"}]`)

	val, err := cache.Get(context.Background(), "campusquiz:quiz:leaderboard:javascript")
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Alice"}]`, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectGet("missing").RedisNil()

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectSet("k", "v", time.Minute).SetVal("OK")
	mock.ExpectDel("k").SetVal(1)

	require.NoError(t, cache.Set(context.Background(), "k", "v", time.Minute))
	require.NoError(t, cache.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
