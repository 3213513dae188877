package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eightball/internal/bootstrap"
	"github.com/MKhiriev/go-eightball/internal/service"
	"github.com/MKhiriev/go-eightball/internal/state"
	"github.com/MKhiriev/go-eightball/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenEdit
	screenAbout
)

const (
	pollInterval  = 500 * time.Millisecond
	statusTimeout = 3 * time.Second
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	appCtx    *bootstrap.AppContext
	store     *state.Store
	contexts  service.ContextService
	buildInfo models.AppBuildInfo

	styles  styles
	spinner spinner.Model
	editor  textarea.Model

	screen     screen
	snapshot   state.Snapshot
	idx        int
	editID     string
	saving     bool
	refreshing bool
	status     string
	overlay    *errorOverlayModel
}

func newAppModel(
	ctx context.Context,
	appCtx *bootstrap.AppContext,
	st *state.Store,
	contexts service.ContextService,
	theme string,
	buildInfo models.AppBuildInfo,
) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.SetWidth(72)
	editor.SetHeight(16)

	return appModel{
		ctx:       ctx,
		appCtx:    appCtx,
		store:     st,
		contexts:  contexts,
		buildInfo: buildInfo,
		styles:    newStyles(theme),
		spinner:   s,
		editor:    editor,
		snapshot:  st.Snapshot(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdPoll())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.applySnapshot(msg.snapshot)
		return m, m.cmdPoll()

	case refreshDoneMsg:
		m.refreshing = false
		m.applySnapshot(m.store.Snapshot())
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		cmd := m.setStatus("Schedules refreshed")
		return m, cmd

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.applySnapshot(m.store.Snapshot())
		m.screen = screenDetail
		m.editor.Blur()
		cmd := m.setStatus("Schedule saved")
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("Copy failed: %v", msg.err)}
			return m, nil
		}
		cmd := m.setStatus("Copied to clipboard")
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.screen == screenEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenEdit:
		return m.updateEditKey(msg)
	case screenDetail:
		return m.updateDetailKey(msg)
	case screenAbout:
		if key.Matches(msg, keys.esc, keys.about) {
			m.screen = screenList
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.snapshot.Schedules)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.edit):
		if item, ok := m.current(); ok {
			return m.startEdit(item)
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.current(); ok {
			return m, cmdCopy(prettyJSON(item))
		}
	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.about):
		m.screen = screenAbout
	}

	return m, nil
}

func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.edit):
		return m.startEdit(item)
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(prettyJSON(item))
	}
	return m, nil
}

func (m appModel) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.saving {
			return m, nil
		}
		m.editor.Blur()
		m.screen = screenDetail
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		doc, err := models.DecodeDocument([]byte(m.editor.Value()))
		if err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("Invalid JSON: %v", err)}
			return m, nil
		}
		m.saving = true
		return m, m.cmdSave(m.editID, models.Schedule(doc))
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m appModel) startEdit(item models.Schedule) (tea.Model, tea.Cmd) {
	if item.ID() == "" {
		m.overlay = &errorOverlayModel{message: errNoScheduleID.Error()}
		return m, nil
	}

	m.editID = item.ID()
	m.editor.SetValue(prettyJSON(item))
	m.screen = screenEdit
	cmd := m.editor.Focus()
	return m, cmd
}

func (m *appModel) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if m.idx >= len(snap.Schedules) {
		m.idx = len(snap.Schedules) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m appModel) current() (models.Schedule, bool) {
	items := m.snapshot.Schedules
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return nil, false
	}
	return items[m.idx], true
}

func (m *appModel) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m appModel) cmdPoll() tea.Cmd {
	st := m.store
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return snapshotMsg{snapshot: st.Snapshot()}
	})
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx, contexts := m.ctx, m.contexts
	return func() tea.Msg {
		return refreshDoneMsg{err: contexts.Refresh(ctx)}
	}
}

func (m appModel) cmdSave(scheduleID string, schedule models.Schedule) tea.Cmd {
	ctx, contexts := m.ctx, m.contexts
	return func() tea.Msg {
		saved, err := contexts.Save(ctx, scheduleID, schedule)
		return savedMsg{schedule: saved, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m appModel) View() string {
	if m.overlay != nil {
		return m.styles.app.Render(m.overlay.View(m.styles))
	}

	switch m.screen {
	case screenAbout:
		return renderBuildInfoWindow(m.styles, m.buildInfo, m.appCtx.APIBaseURL())
	case screenDetail:
		if item, ok := m.current(); ok {
			return m.viewDetail(item)
		}
	case screenEdit:
		return m.viewEdit()
	}
	return m.viewList()
}
