// Package tui is the mounted application of the eightball client: a
// bubbletea program rendering the schedules held by the state store.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-eightball/internal/bootstrap"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/prefs"
	"github.com/MKhiriev/go-eightball/internal/service"
	"github.com/MKhiriev/go-eightball/internal/state"
	"github.com/MKhiriev/go-eightball/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	store     *state.Store
	contexts  service.ContextService
	prefs     prefs.Prefs
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// New prepares the UI. Nothing is drawn until [TUI.Mount]. opts are passed
// to the bubbletea program; when empty the program runs on the alternate
// screen.
func New(
	st *state.Store,
	contexts service.ContextService,
	p prefs.Prefs,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
	opts ...tea.ProgramOption,
) *TUI {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{
		store:     st,
		contexts:  contexts,
		prefs:     p,
		buildInfo: buildInfo,
		options:   opts,
		logger:    log,
	}
}

// Mount implements bootstrap.Mounter. It starts the program in the
// background and returns immediately; use [TUI.Wait] to block until the user
// quits. The program stops when ctx is cancelled.
func (t *TUI) Mount(ctx context.Context, appCtx *bootstrap.AppContext) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return ErrAlreadyMounted
	}

	theme := resolveTheme(t.prefs.Theme, appCtx.Config().Theme())
	model := newAppModel(ctx, appCtx, t.store, t.contexts, theme, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})

	t.logger.Info().
		Str("func", "TUI.Mount").
		Str("theme", theme).
		Str("api", appCtx.APIBaseURL()).
		Msg("mounting terminal ui")

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			err = nil
		}

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}(t.program, t.done)

	return nil
}

// Wait blocks until the mounted program exits and returns its error.
func (t *TUI) Wait() error {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return ErrNotMounted
	}

	<-done

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Quit asks the running program to exit. It is a no-op before Mount.
func (t *TUI) Quit() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Quit()
	}
}
