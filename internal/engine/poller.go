package engine

import (
	"context"
	"time"
)

// ChanPoller receives keys from another goroutine, typically the terminal
// UI's event loop.
type ChanPoller struct {
	keys chan Key
}

func NewChanPoller() *ChanPoller {
	return &ChanPoller{keys: make(chan Key, 8)}
}

// Deliver queues k without blocking. It reports false when the queue is full
// and the key was dropped.
func (p *ChanPoller) Deliver(k Key) bool {
	select {
	case p.keys <- k:
		return true
	default:
		return false
	}
}

func (p *ChanPoller) Poll(ctx context.Context, timeout time.Duration) (Key, error) {
	if err := ctx.Err(); err != nil {
		return KeyNone, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return KeyNone, ctx.Err()
	case k := <-p.keys:
		return k, nil
	case <-timer.C:
		return KeyNone, nil
	}
}

// SleepPoller never sees a key; it only paces the loop. Used when there is
// no interactive terminal.
type SleepPoller struct{}

func (SleepPoller) Poll(ctx context.Context, timeout time.Duration) (Key, error) {
	if err := ctx.Err(); err != nil {
		return KeyNone, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return KeyNone, ctx.Err()
	case <-timer.C:
		return KeyNone, nil
	}
}
