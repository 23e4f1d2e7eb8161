//go:build integration

package comune_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/comune"
	"github.com/MrJamesThe3rd/catasto/internal/testutil/containers"
)

func TestRedisCache(t *testing.T) {
	client := containers.NewRedis(t)
	ctx := context.Background()

	cache := comune.NewRedisCache(client, time.Minute)

	_, found, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	created := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	want := &catasto.Comune{ID: 1, Nome: "Carcare", Provincia: "Savona", Regione: "Liguria", CreatedAt: created}
	require.NoError(t, cache.Put(ctx, want))

	got, found, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want.Nome, got.Nome)
	assert.Equal(t, want.Regione, got.Regione)
	assert.True(t, created.Equal(got.CreatedAt))

	ttl, err := client.TTL(ctx, "catasto:comune:1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	client := containers.NewRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "catasto:comune:2", "not json", 0).Err())

	_, _, err := comune.NewRedisCache(client, 0).Get(ctx, 2)
	assert.Error(t, err)
}
