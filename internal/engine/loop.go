// Package engine drives the refresh cycle: wait for input or the period to
// elapse, sample every tracker, draw, repeat.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	sderrors "sysdash/internal/errors"
	"sysdash/internal/output"

	"go.uber.org/zap"
)

const DefaultPeriod = 1 * time.Second

type State int

const (
	Waiting State = iota
	Sampling
	Terminated
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Sampling:
		return "sampling"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Key is an input event as seen by the loop.
type Key int

const (
	KeyNone  Key = iota // poll timed out
	KeyQuit             // end the dashboard
	KeyOther            // any other key; ignored, but ends the wait early
)

// Sampler produces one frame per tick.
type Sampler interface {
	Sample(ctx context.Context) output.Frame
}

type Renderer interface {
	Draw(f output.Frame) error
}

// InputPoller waits up to timeout for a key. It is the loop's only
// suspension point, so it doubles as the tick timer.
type InputPoller interface {
	Poll(ctx context.Context, timeout time.Duration) (Key, error)
}

type Option func(*Loop)

// WithPeriod sets the minimum time between ticks.
func WithPeriod(d time.Duration) Option {
	return func(l *Loop) { l.period = d }
}

// WithStateHook observes every state transition.
func WithStateHook(fn func(State)) Option {
	return func(l *Loop) { l.hook = fn }
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// Loop is the refresh state machine. It is not safe for concurrent use;
// one goroutine calls Run and nothing else touches the sampler.
type Loop struct {
	sampler  Sampler
	renderer Renderer
	poller   InputPoller
	period   time.Duration
	hook     func(State)
	log      *zap.Logger

	state State
	ticks uint64
}

func NewLoop(sampler Sampler, renderer Renderer, poller InputPoller, opts ...Option) (*Loop, error) {
	l := &Loop{
		sampler:  sampler,
		renderer: renderer,
		poller:   poller,
		period:   DefaultPeriod,
		log:      zap.NewNop(),
		state:    Waiting,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.period <= 0 {
		return nil, sderrors.New(sderrors.ErrConfig,
			fmt.Sprintf("Refresh period must be positive, got %s", l.period),
			"Set refresh.interval (or --interval) to a value such as 1s.")
	}
	if sampler == nil || renderer == nil || poller == nil {
		return nil, sderrors.New(sderrors.ErrConfig, "Refresh loop needs a sampler, renderer and input poller", "")
	}
	return l, nil
}

// Run ticks until the quit key arrives, the context ends, or a draw fails.
// Quit and cancellation return nil.
func (l *Loop) Run(ctx context.Context) error {
	return l.run(ctx, 0)
}

// RunTicks is Run but also stops after n ticks.
func (l *Loop) RunTicks(ctx context.Context, n uint64) error {
	if n == 0 {
		l.transition(Terminated)
		return nil
	}
	return l.run(ctx, n)
}

func (l *Loop) run(ctx context.Context, limit uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("refresh loop panicked", zap.Any("panic", r), zap.Stringer("state", l.state))
			l.transition(Terminated)
			err = sderrors.New(sderrors.ErrTerminal,
				fmt.Sprintf("Refresh loop panicked: %v", r),
				"Run with --log-file and --log-level debug to capture the failing sample")
		}
	}()

	for {
		l.transition(Waiting)

		key, err := l.poller.Poll(ctx, l.period)
		if err != nil {
			l.transition(Terminated)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return sderrors.WrapWithCode(err, sderrors.ErrTerminal, "Reading terminal input failed", "")
		}
		if key == KeyQuit {
			l.log.Debug("quit key received", zap.Uint64("ticks", l.ticks))
			l.transition(Terminated)
			return nil
		}

		if err := l.Tick(ctx); err != nil {
			return err
		}

		if limit > 0 && l.ticks >= limit {
			l.transition(Terminated)
			return nil
		}
	}
}

// Tick samples every tracker and draws the result once. A draw failure
// terminates the loop.
func (l *Loop) Tick(ctx context.Context) error {
	l.transition(Sampling)

	frame := l.sampler.Sample(ctx)
	l.ticks++

	if err := l.renderer.Draw(frame); err != nil {
		l.transition(Terminated)
		return sderrors.WrapWithCode(err, sderrors.ErrTerminal,
			"Failed to draw the dashboard",
			"Check the terminal is still attached and large enough")
	}
	return nil
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Ticks() uint64 { return l.ticks }

func (l *Loop) Period() time.Duration { return l.period }

func (l *Loop) transition(s State) {
	if l.state == s && s != Waiting {
		return
	}
	l.state = s
	l.log.Debug("loop state", zap.Stringer("state", s))
	if l.hook != nil {
		l.hook(s)
	}
}
