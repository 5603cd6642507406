package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"pixclaim/pkg/platform/sentinel"
)

type RedisLockerSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	locker *RedisLocker
}

func TestRedisLockerSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerSuite))
}

func (s *RedisLockerSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.locker = NewRedis(s.client,
		WithTTL(time.Second),
		WithWait(30*time.Millisecond),
		WithRetryInterval(5*time.Millisecond),
	)
}

func (s *RedisLockerSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *RedisLockerSuite) TestAcquireSetsKeyWithTTL() {
	release, err := s.locker.Acquire(context.Background(), "key-a")
	require.NoError(s.T(), err)

	assert.True(s.T(), s.mr.Exists(keyPrefix+"key-a"))
	assert.Equal(s.T(), time.Second, s.mr.TTL(keyPrefix+"key-a"))

	release()
	assert.False(s.T(), s.mr.Exists(keyPrefix+"key-a"))
}

func (s *RedisLockerSuite) TestHeldLockTimesOut() {
	ctx := context.Background()
	release, err := s.locker.Acquire(ctx, "key-a")
	require.NoError(s.T(), err)
	defer release()

	_, err = s.locker.Acquire(ctx, "key-a")
	assert.ErrorIs(s.T(), err, sentinel.ErrLockHeld)
}

func (s *RedisLockerSuite) TestWaiterAcquiresAfterRelease() {
	ctx := context.Background()
	locker := NewRedis(s.client, WithWait(time.Second), WithRetryInterval(5*time.Millisecond))

	release, err := locker.Acquire(ctx, "key-a")
	require.NoError(s.T(), err)

	acquired := make(chan error, 1)
	go func() {
		r, err := locker.Acquire(ctx, "key-a")
		if err == nil {
			r()
		}
		acquired <- err
	}()

	time.Sleep(20 * time.Millisecond)
	release()

	select {
	case err := <-acquired:
		assert.NoError(s.T(), err)
	case <-time.After(2 * time.Second):
		s.T().Fatal("waiter never acquired the lock")
	}
}

func (s *RedisLockerSuite) TestReleaseKeepsForeignToken() {
	ctx := context.Background()
	release, err := s.locker.Acquire(ctx, "key-a")
	require.NoError(s.T(), err)

	// Simulate expiry followed by another holder taking the key.
	require.NoError(s.T(), s.mr.Set(keyPrefix+"key-a", "someone-else"))
	release()

	got, err := s.mr.Get(keyPrefix + "key-a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "someone-else", got)
}

func (s *RedisLockerSuite) TestOtherKeysAreIndependent() {
	ctx := context.Background()
	release, err := s.locker.Acquire(ctx, "key-a")
	require.NoError(s.T(), err)
	defer release()

	other, err := s.locker.Acquire(ctx, "key-b")
	require.NoError(s.T(), err)
	other()
}

func (s *RedisLockerSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	release, err := s.locker.Acquire(context.Background(), "key-a")
	require.NoError(s.T(), err)
	defer release()

	cancel()
	_, err = s.locker.Acquire(ctx, "key-a")
	assert.ErrorIs(s.T(), err, context.Canceled)
}

func (s *RedisLockerSuite) TestRedisDownIsUnavailable() {
	s.mr.Close()

	_, err := s.locker.Acquire(context.Background(), "key-a")
	assert.ErrorIs(s.T(), err, sentinel.ErrUnavailable)
}
