package tui

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"sysdash/internal/engine"
	sderrors "sysdash/internal/errors"
	"sysdash/internal/output"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Sender is the part of *tea.Program the renderer needs.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramRenderer forwards frames from the refresh loop to the Bubble Tea
// event loop. Each frame is deep-copied before it crosses goroutines.
type ProgramRenderer struct {
	p Sender

	mu     sync.Mutex
	closed bool
}

func NewProgramRenderer(p Sender) *ProgramRenderer {
	return &ProgramRenderer{p: p}
}

func (r *ProgramRenderer) Draw(f output.Frame) error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return sderrors.New(sderrors.ErrTerminal, "Terminal UI has already exited", "")
	}
	r.p.Send(FrameMsg{Frame: f.Clone()})
	return nil
}

// Close makes every later Draw fail.
func (r *ProgramRenderer) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Options configures Run.
type Options struct {
	Period  time.Duration
	QuitKey string
	Logger  *zap.Logger
}

// CheckTerminal fails unless f is an interactive terminal.
func CheckTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return sderrors.New(sderrors.ErrTerminal,
			"Standard output is not a terminal",
			"Run sysdash in an interactive terminal, or use 'sysdash snapshot' for plain text output")
	}
	return nil
}

// Run starts the dashboard and blocks until the user quits, ctx ends, or
// the terminal fails. Bubble Tea restores the terminal on every exit path.
func Run(ctx context.Context, sampler engine.Sampler, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := CheckTerminal(os.Stdout); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := engine.NewChanPoller()
	m := InitialModel(poller, opts.QuitKey)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithContext(ctx))
	renderer := NewProgramRenderer(p)

	loop, err := engine.NewLoop(sampler, renderer, poller,
		engine.WithPeriod(opts.Period),
		engine.WithLogger(log))
	if err != nil {
		return err
	}

	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		if err != nil {
			// the UI cannot show anything more; unblock p.Run
			p.Quit()
		}
		loopErr <- err
	}()

	_, runErr := p.Run()
	cancel()
	renderer.Close()
	lerr := <-loopErr

	log.Info("dashboard stopped", zap.Uint64("ticks", loop.Ticks()), zap.Stringer("state", loop.State()))

	if lerr != nil {
		return lerr
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return sderrors.WrapWithCode(runErr, sderrors.ErrTerminal, "Terminal UI failed", "")
	}
	return nil
}
