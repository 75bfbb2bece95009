package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/fotmob/fotmob"
)

func echoFetch(ctx context.Context, id string) (fotmob.Value, error) {
	return fotmob.Object(map[string]fotmob.Value{"id": fotmob.String(id)}), nil
}

func TestRunPreservesOrder(t *testing.T) {
	ids := []string{"47", "87", "54", "55", "53", "42"}

	result := NewRunner(WithConcurrency(3)).Run(context.Background(), ids, echoFetch)

	assert.True(t, result.OK())
	assert.Equal(t, len(ids), result.Requested)
	require.Len(t, result.Successful, len(ids))
	for i, item := range result.Successful {
		assert.Equal(t, ids[i], item.ID)
		got, _ := item.Value.Get("id").AsString()
		assert.Equal(t, ids[i], got)
	}
}

func TestRunCollectsFailures(t *testing.T) {
	notFound := &fotmob.Error{Kind: fotmob.KindNotFound, StatusCode: 404}
	fetch := func(ctx context.Context, id string) (fotmob.Value, error) {
		if id == "missing" {
			return fotmob.Value{}, notFound
		}
		return echoFetch(ctx, id)
	}

	result := NewRunner().Run(context.Background(), []string{"1", "missing", "2"}, fetch)

	assert.False(t, result.OK())
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "missing", result.Failed[0].ID)
	assert.True(t, fotmob.IsNotFound(result.Failed[0]))
	assert.Contains(t, result.Failed[0].Error(), "failed to fetch missing")
	assert.Len(t, result.Successful, 2)
}

func TestRunRespectsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	fetch := func(ctx context.Context, id string) (fotmob.Value, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return echoFetch(ctx, id)
	}

	ids := make([]string, 12)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	result := NewRunner(WithConcurrency(2)).Run(context.Background(), ids, fetch)
	assert.True(t, result.OK())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	fetch := func(ctx context.Context, id string) (fotmob.Value, error) {
		calls.Add(1)
		return echoFetch(ctx, id)
	}

	result := NewRunner().Run(ctx, []string{"1", "2", "3"}, fetch)
	assert.Zero(t, calls.Load())
	require.Len(t, result.Failed, 3)
	assert.True(t, errors.Is(result.Failed[0], context.Canceled))
}

func TestRunWithRate(t *testing.T) {
	start := time.Now()
	result := NewRunner(WithRate(50)).Run(context.Background(), []string{"1", "2", "3", "4"}, echoFetch)

	assert.True(t, result.OK())
	// burst of one, then three more tokens at 20ms intervals
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestOptions(t *testing.T) {
	assert.Equal(t, DefaultConcurrency, NewRunner().concurrency)
	assert.Equal(t, 1, NewRunner(WithConcurrency(0)).concurrency)
	assert.Equal(t, MaxConcurrency, NewRunner(WithConcurrency(100)).concurrency)
	assert.Nil(t, NewRunner(WithRate(0)).limiter)
	assert.NotNil(t, NewRunner(WithRate(1)).limiter)

	empty := NewRunner().Run(context.Background(), nil, echoFetch)
	assert.True(t, empty.OK())
}
