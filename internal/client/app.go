package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/bootstrap"
	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/prefs"
	"github.com/MKhiriev/go-eightball/internal/service"
	"github.com/MKhiriev/go-eightball/internal/state"
	"github.com/MKhiriev/go-eightball/internal/store"
	"github.com/MKhiriev/go-eightball/internal/tui"
	"github.com/MKhiriev/go-eightball/internal/workers"
	"github.com/MKhiriev/go-eightball/models"
	tea "github.com/charmbracelet/bubbletea"
)

const versionProbeTimeout = 3 * time.Second

type App struct {
	storages  *store.ClientStorages
	store     *state.Store
	services  *service.ClientServices
	ui        UI
	sequencer *bootstrap.Sequencer

	logger *logger.Logger
}

// NewApp wires the client. uiOpts are passed to the terminal UI program.
func NewApp(
	ctx context.Context,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
	uiOpts ...tea.ProgramOption,
) (*App, error) {
	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	st := state.NewStore(backend.BaseURL())
	services := service.NewClientServices(storages, backend, st, cfg.Workers, log)

	p, err := prefs.Load(cfg.UI.PrefsPath)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewApp").Msg("preferences unavailable, using defaults")
	}

	ui := tui.New(st, services.ContextService, p, buildInfo, log, uiOpts...)

	sequencer := bootstrap.NewSequencer(backend, ui, log,
		bootstrap.WithStoreInitializer(services.ContextService),
		bootstrap.WithTransitionHook(func(from, to bootstrap.State) {
			log.Debug().Stringer("from", from).Stringer("to", to).Msg("bootstrap transition")
		}),
	)

	return &App{
		storages:  storages,
		store:     st,
		services:  services,
		ui:        ui,
		sequencer: sequencer,
		logger:    log,
	}, nil
}

// Run bootstraps the application and blocks until the UI exits or ctx is
// cancelled. Background workers are stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	appCtx, err := a.sequencer.Run(ctx)
	if err != nil {
		a.ui.Quit()
		return err
	}

	a.logger.Info().
		Str("user", appCtx.User().DisplayName()).
		Str("api", appCtx.APIBaseURL()).
		Msg("client ready")
	a.logServerVersion(ctx)

	ws := workers.New(a.services.RefreshJob)
	workersDone := make(chan error, 1)
	go func() {
		workersDone <- ws.Run(ctx)
	}()

	uiErr := a.ui.Wait()
	cancel()

	return errors.Join(uiErr, <-workersDone)
}

func (a *App) Close() error {
	return a.storages.Close()
}

func (a *App) logServerVersion(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	v, err := a.services.StatusService.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		return
	}
	a.logger.Info().Str("server_version", v.Version).Msg("connected to backend")
}
