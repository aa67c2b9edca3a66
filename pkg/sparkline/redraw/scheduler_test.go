package redraw

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startScheduler(t *testing.T, s *Scheduler) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := s.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	}()
	return func() {
		cancelCtx()
		wg.Wait()
	}
}

func TestBurstCollapsesIntoOnePass(t *testing.T) {
	var calls atomic.Int64
	s := New(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, WithFrame(50*time.Millisecond), WithLogger(zaptest.NewLogger(t)))

	stop := startScheduler(t, s)
	defer stop()

	for i := 0; i < 100; i++ {
		s.Invalidate()
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(1), s.Passes())
}

func TestSeparateBurstsRunSeparatePasses(t *testing.T) {
	var calls atomic.Int64
	s := New(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, WithFrame(10*time.Millisecond))

	stop := startScheduler(t, s)
	defer stop()

	s.Invalidate()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	s.Invalidate()
	s.Invalidate()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
}

func TestNoInvalidationNoPass(t *testing.T) {
	var calls atomic.Int64
	s := New(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, WithFrame(5*time.Millisecond))

	stop := startScheduler(t, s)
	time.Sleep(30 * time.Millisecond)
	stop()

	assert.Zero(t, calls.Load())
}

func TestFailedPassDoesNotStopLoop(t *testing.T) {
	var calls atomic.Int64
	s := New(func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			return errors.New("boom")
		}
		return nil
	}, WithFrame(5*time.Millisecond), WithLogger(zaptest.NewLogger(t)))

	stop := startScheduler(t, s)
	defer stop()

	s.Invalidate()
	require.Eventually(t, func() bool { return s.Failures() == 1 }, time.Second, time.Millisecond)

	s.Invalidate()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, int64(1), s.Failures())
}

func TestInvalidateNeverBlocks(t *testing.T) {
	s := New(func(ctx context.Context) error { return nil })

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			s.Invalidate()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Invalidate blocked without a running scheduler")
	}
}
