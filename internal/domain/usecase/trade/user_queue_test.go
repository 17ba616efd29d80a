package trade

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestQueue(t *testing.T, idle time.Duration) *UserQueue {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewUserQueue(logger, 10, idle)
}

func TestUserQueue_Do(t *testing.T) {
	t.Run("Returns the job result", func(t *testing.T) {
		// Arrange
		q := newTestQueue(t, time.Minute)
		defer q.Shutdown()
		want := errors.New("job failed")

		// Act
		err := q.Do(context.Background(), "user-1", func(ctx context.Context) error {
			return want
		})

		// Assert
		assert.ErrorIs(t, err, want)
	})

	t.Run("Jobs of one user never overlap", func(t *testing.T) {
		// Arrange
		q := newTestQueue(t, time.Minute)
		defer q.Shutdown()

		var running, maxRunning atomic.Int32
		var wg sync.WaitGroup

		// Act
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = q.Do(context.Background(), "user-1", func(ctx context.Context) error {
					n := running.Add(1)
					for {
						m := maxRunning.Load()
						if n <= m || maxRunning.CompareAndSwap(m, n) {
							break
						}
					}
					time.Sleep(time.Millisecond)
					running.Add(-1)
					return nil
				})
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, int32(1), maxRunning.Load())
	})

	t.Run("Different users run in parallel", func(t *testing.T) {
		// Arrange
		q := newTestQueue(t, time.Minute)
		defer q.Shutdown()

		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_ = q.Do(context.Background(), "user-1", func(ctx context.Context) error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		// Act
		err := q.Do(context.Background(), "user-2", func(ctx context.Context) error {
			return nil
		})
		close(release)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Canceled caller does not run its job", func(t *testing.T) {
		// Arrange
		q := newTestQueue(t, time.Minute)
		defer q.Shutdown()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var ran atomic.Bool

		// Act
		err := q.Do(ctx, "user-1", func(ctx context.Context) error {
			ran.Store(true)
			return nil
		})

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
		q.Shutdown()
		assert.False(t, ran.Load())
	})

	t.Run("Idle worker exits and a new one starts on demand", func(t *testing.T) {
		// Arrange
		q := newTestQueue(t, 10*time.Millisecond)
		defer q.Shutdown()
		require.NoError(t, q.Do(context.Background(), "user-1", func(ctx context.Context) error { return nil }))

		// Act
		require.Eventually(t, func() bool {
			q.mu.Lock()
			defer q.mu.Unlock()
			return len(q.queues) == 0
		}, time.Second, 5*time.Millisecond)

		// Assert
		require.NoError(t, q.Do(context.Background(), "user-1", func(ctx context.Context) error { return nil }))
	})

	t.Run("Shut down queue refuses new jobs", func(t *testing.T) {
		// Arrange
		q := newTestQueue(t, time.Minute)
		q.Shutdown()

		// Act
		err := q.Do(context.Background(), "user-1", func(ctx context.Context) error { return nil })

		// Assert
		require.Error(t, err)
	})
}
