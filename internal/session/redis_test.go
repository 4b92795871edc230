package session

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisStore connects to TEST_REDIS_ADDR; the test is skipped when it is unset.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	return NewRedisStore(client, time.Minute)
}

func TestRedisStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	st := &State{ID: NewID(), CommunityID: 4}
	require.NoError(t, store.Create(ctx, st))
	t.Cleanup(func() { store.Delete(ctx, st.ID) })

	current, err := store.Update(ctx, st.ID, func(s *State) error {
		s.CourtID = 7
		return ErrSkip
	})
	assert.ErrorIs(t, err, ErrSkip)
	assert.Equal(t, int64(0), current.CourtID)

	updated, err := store.Update(ctx, st.ID, func(s *State) error {
		s.CourtID = 3
		s.Occupancy = []int64{5}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.CourtID)

	got, err := store.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, got.Occupancy)
}

func TestRedisStoreConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	st := &State{ID: NewID()}
	require.NoError(t, store.Create(ctx, st))
	t.Cleanup(func() { store.Delete(ctx, st.ID) })

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, st.ID, func(s *State) error {
				s.Generation++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.Generation)
}

func TestRedisStoreMissing(t *testing.T) {
	store := newTestRedisStore(t)

	_, err := store.Get(context.Background(), NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}
