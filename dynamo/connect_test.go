package dynamo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/finwise-academy/webinar-checkout/registrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("concurrent callers share a single open attempt", func(t *testing.T) {
		ctx := context.Background()

		var opens atomic.Int64
		release := make(chan struct{})
		connector := NewConnector(DefaultConnectTimeout, func(ctx context.Context) (registrant.Repository, error) {
			opens.Add(1)
			<-release
			return &DB{tableName: "fake"}, nil
		})

		var started, done sync.WaitGroup
		repos := make([]registrant.Repository, 10)
		for i := range repos {
			started.Add(1)
			done.Add(1)
			go func() {
				defer done.Done()
				started.Done()
				repo, err := connector.Connect(ctx)
				assert.NoError(t, err)
				repos[i] = repo
			}()
		}

		// Let every caller reach Connect before the open is allowed
		// to finish, so they all pile onto the same attempt.
		started.Wait()
		time.Sleep(10 * time.Millisecond)
		close(release)
		done.Wait()

		assert.Equal(t, int64(1), opens.Load())
		for _, repo := range repos {
			assert.Same(t, repos[0], repo)
		}
	})

	t.Run("connection is cached across calls", func(t *testing.T) {
		ctx := context.Background()

		var opens atomic.Int64
		connector := NewConnector(DefaultConnectTimeout, func(ctx context.Context) (registrant.Repository, error) {
			opens.Add(1)
			return &DB{tableName: "fake"}, nil
		})

		first, err := connector.Connect(ctx)
		require.NoError(t, err)
		second, err := connector.Connect(ctx)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int64(1), opens.Load())
	})

	t.Run("failed attempts are not cached", func(t *testing.T) {
		ctx := context.Background()

		var opens atomic.Int64
		connector := NewConnector(DefaultConnectTimeout, func(ctx context.Context) (registrant.Repository, error) {
			if opens.Add(1) == 1 {
				return nil, errors.New("dynamo is down")
			}
			return &DB{tableName: "fake"}, nil
		})

		_, err := connector.Connect(ctx)
		var regError *registrant.Error
		require.ErrorAs(t, err, &regError)
		assert.Equal(t, registrant.REASON_STORE_UNAVAILABLE, regError.Reason)

		repo, err := connector.Connect(ctx)
		require.NoError(t, err)
		assert.NotNil(t, repo)
		assert.Equal(t, int64(2), opens.Load())
	})

	t.Run("caller cancellation does not fail the shared attempt", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		connector := NewConnector(DefaultConnectTimeout, func(ctx context.Context) (registrant.Repository, error) {
			require.NoError(t, ctx.Err())
			return &DB{tableName: "fake"}, nil
		})

		repo, err := connector.Connect(ctx)
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})
}
