package client

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/bootstrap"
	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/devserver"
	devhttp "github.com/MKhiriev/go-eightball/internal/handler/http"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/tui"
	"github.com/MKhiriev/go-eightball/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headless() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	}
}

func testConfig(t *testing.T, baseURL string) *config.ClientConfig {
	t.Helper()
	dir := t.TempDir()

	return &config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: baseURL, RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "cache.db")}},
		Workers: config.ClientWorkers{RefreshInterval: time.Hour},
		UI:      config.ClientUI{PrefsPath: filepath.Join(dir, "prefs.toml")},
	}
}

func TestApp_RunAgainstDevServer(t *testing.T) {
	backend := devserver.NewBackend(devserver.DefaultFixtures(), "9.9.9")
	srv := httptest.NewServer(devhttp.NewHandler(backend, true, logger.Nop()).Init())
	defer srv.Close()

	app, err := NewApp(context.Background(), testConfig(t, srv.URL), models.NewAppBuildInfo("", "", ""), logger.Nop(), headless()...)
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		snap := app.store.Snapshot()
		return snap.Ready && len(snap.Schedules) == 2
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, bootstrap.StateReady, app.sequencer.State())

	snap := app.store.Snapshot()
	assert.False(t, snap.FromCache)
	assert.NoError(t, snap.LastError)
	assert.Equal(t, "morning", snap.Schedules[0].ID())

	cached, err := app.storages.ScheduleRepository.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_RunFailsWhenBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	app, err := NewApp(context.Background(), testConfig(t, url), models.AppBuildInfo{}, logger.Nop(), headless()...)
	require.NoError(t, err)
	defer app.Close()

	err = app.Run(context.Background())

	var stageErr *bootstrap.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, bootstrap.StateConfiguring, stageErr.Stage)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, bootstrap.StateFailed, app.sequencer.State())

	assert.ErrorIs(t, app.ui.Wait(), tui.ErrNotMounted)
}

func TestNewApp_InvalidBaseURL(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig(t, "://bad"), models.AppBuildInfo{}, logger.Nop(), headless()...)
	assert.Error(t, err)
}
