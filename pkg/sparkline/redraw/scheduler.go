// Package redraw coalesces change notifications into layout passes.
//
// Invalidate may be called any number of times from any goroutine; the
// scheduler waits one frame after the first pending notification, absorbs
// everything that arrived meanwhile and runs a single pass. At most one pass
// runs per frame.
package redraw

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultFrame is the coalescing interval, roughly one display frame.
const DefaultFrame = 16 * time.Millisecond

// PassFunc performs one recompute-and-redraw pass.
type PassFunc func(ctx context.Context) error

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithFrame sets the coalescing interval.
func WithFrame(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.frame = d
		}
	}
}

// WithLogger sets the logger used to report failed passes.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scheduler runs a PassFunc at most once per frame.
type Scheduler struct {
	pass    PassFunc
	frame   time.Duration
	logger  *zap.Logger
	pending chan struct{}

	passes   atomic.Int64
	failures atomic.Int64
}

// New creates a Scheduler for pass.
func New(pass PassFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		pass:    pass,
		frame:   DefaultFrame,
		logger:  zap.NewNop(),
		pending: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invalidate marks the output stale. It never blocks.
func (s *Scheduler) Invalidate() {
	select {
	case s.pending <- struct{}{}:
	default:
		// already pending
	}
}

// Passes returns the number of completed passes.
func (s *Scheduler) Passes() int64 {
	return s.passes.Load()
}

// Failures returns the number of passes that returned an error.
func (s *Scheduler) Failures() int64 {
	return s.failures.Load()
}

// Run processes invalidations until ctx is done and returns ctx.Err().
// A failed pass is logged and does not stop the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(s.frame)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.pending:
		}

		timer.Reset(s.frame)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		// fold notifications that arrived during the frame into this pass
		select {
		case <-s.pending:
		default:
		}

		start := time.Now()
		err := s.pass(ctx)
		s.passes.Add(1)
		if err != nil {
			s.failures.Add(1)
			s.logger.Warn("redraw pass failed", zap.Error(err))
			continue
		}
		s.logger.Debug("redraw pass complete", zap.Duration("took", time.Since(start)))
	}
}
