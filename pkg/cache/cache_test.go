package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/dcmodel/pkg/params"
)

func TestKey_StableAndSensitive(t *testing.T) {
	p := params.Defaults()

	k1, err := Key(p, 10)
	require.NoError(t, err)
	k2, err := Key(params.Defaults(), 10)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Regexp(t, `^dcmodel:v1:[0-9a-f]{16}$`, k1)

	k3, err := Key(p, 11)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3, "horizon is part of the key")

	p.Opex[2].Value = 0.008
	k4, err := Key(p, 10)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4, "opex lines are part of the key")
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	in := []byte(`{"a":1}`)
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X' // caller mutation must not leak in

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%8)
			_ = m.Set(ctx, key, []byte(key))
			_, _, _ = m.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, m.Len())
}

func TestRedis_UnreachableIsAnError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := NewRedisFromClient(client, time.Minute)
	defer r.Close()

	ctx := context.Background()
	_, ok, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, r.Set(ctx, "k", []byte("v")))
	assert.Error(t, r.Ping(ctx))
}

var (
	_ Cache = (*Memory)(nil)
	_ Cache = (*Redis)(nil)
)
