package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/sirupsen/logrus"
)

// DefaultMaxInFlight caps concurrently running tasks in a scope
const DefaultMaxInFlight = 4

// Scope runs the view model's asynchronous work. Closing it cancels the
// context handed to every task and waits for running tasks to return.
type Scope struct {
	ctx         context.Context
	cancel      context.CancelFunc
	pool        pond.Pool
	onUnhandled func(error)
	closeOnce   sync.Once
}

// ScopeConfig configures a scope
type ScopeConfig struct {
	// Parent is the context the scope derives from. Defaults to Background.
	Parent context.Context
	// MaxInFlight caps concurrent tasks. Defaults to DefaultMaxInFlight.
	MaxInFlight int
	// OnUnhandled receives errors returned by tasks. Cancellation is never
	// reported. Defaults to logging at error level.
	OnUnhandled func(error)
	Logger      logrus.FieldLogger
}

// NewScope creates a new task scope
func NewScope(cfg ScopeConfig) *Scope {
	parent := cfg.Parent
	if parent == nil {
		parent = context.Background()
	}

	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}

	onUnhandled := cfg.OnUnhandled
	if onUnhandled == nil {
		log := cfg.Logger
		if log == nil {
			log = logrus.StandardLogger()
		}
		onUnhandled = func(err error) {
			log.WithError(err).Error("unhandled error in view model task")
		}
	}

	ctx, cancel := context.WithCancel(parent)

	return &Scope{
		ctx:         ctx,
		cancel:      cancel,
		pool:        pond.NewPool(maxInFlight, pond.WithContext(ctx)),
		onUnhandled: onUnhandled,
	}
}

// Context returns the scope's context
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Launch submits fn to the pool. The returned task completes when fn returns.
// Tasks launched after Close never run.
func (s *Scope) Launch(fn func(ctx context.Context) error) pond.Task {
	return s.pool.SubmitErr(func() error {
		err := fn(s.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.onUnhandled(err)
		}
		return err
	})
}

// Close cancels running tasks and waits for them to return
func (s *Scope) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		s.pool.StopAndWait()
	})
}
