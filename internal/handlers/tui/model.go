// Package tui is the terminal front end: one bubbletea model that renders the
// landing, manual, automatic and results views of a single local session.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/messaging"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultSessionID keys the single terminal session
	DefaultSessionID = "terminal"

	pollInterval = 200 * time.Millisecond
)

// Config holds the services the model drives
type Config struct {
	Mode      mode.Service
	Tally     tally.Service
	Detection detection.Service
	Results   results.Service
	Messaging messaging.Service

	// ExportDir receives exported result files
	ExportDir string

	// SessionID defaults to DefaultSessionID
	SessionID string
}

type inputKind int

const (
	inputNone inputKind = iota
	inputPlayer
	inputFile
)

type tickMsg time.Time

type analysisFinishedMsg struct {
	result *models.SessionResult
	err    error
}

// Model is the root bubbletea model
type Model struct {
	ctx       context.Context
	cfg       *Config
	sessionID string
	styles    Styles

	state    *models.ViewState
	session  *models.ManualSession
	analysis *models.Analysis
	report   *models.Report
	headline string
	status   string

	cursor    int
	input     textinput.Model
	inputKind inputKind
	bar       progress.Model

	note string
	err  string
}

// New creates the model and loads the session's current view
func New(ctx context.Context, cfg *Config) (Model, error) {
	if cfg == nil {
		return Model{}, errors.New("config cannot be nil")
	}
	if cfg.Mode == nil || cfg.Tally == nil || cfg.Detection == nil || cfg.Results == nil || cfg.Messaging == nil {
		return Model{}, errors.New("all services are required")
	}
	if cfg.ExportDir == "" {
		return Model{}, errors.New("export dir cannot be empty")
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	ti := textinput.New()
	ti.CharLimit = 256

	m := Model{
		ctx:       ctx,
		cfg:       cfg,
		sessionID: sessionID,
		styles:    DefaultStyles(),
		input:     ti,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}

	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the poll loop that keeps the match clock and progress current
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForAnalysis(ch <-chan analysisFinishedMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.inputKind != inputNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, 60)
		return m, nil

	case tickMsg:
		if m.live() {
			m.fail(m.refresh())
		}
		return m, tick()

	case analysisFinishedMsg:
		return m.finishAnalysis(msg)
	}

	return m, nil
}

// live reports whether the view changes without user input
func (m Model) live() bool {
	switch m.mode() {
	case models.ModeManual:
		return m.session != nil && m.session.Active
	case models.ModeAutomatic:
		return m.analysis != nil && m.analysis.Status != models.AnalysisStatusIdle
	}
	return false
}

func (m Model) mode() models.Mode {
	if m.state == nil {
		return models.ModeLanding
	}
	return m.state.Mode
}

// refresh reloads everything the current view shows
func (m *Model) refresh() error {
	ctx := m.ctx
	st, err := m.cfg.Mode.GetState(ctx, &mode.GetStateInput{SessionID: m.sessionID})
	if err != nil {
		return err
	}
	m.state = st.State
	m.session, m.analysis, m.report, m.headline = nil, nil, nil, ""

	statusInput := &messaging.GetStatusMessageInput{Mode: m.state.Mode}

	switch m.state.Mode {
	case models.ModeManual:
		out, err := m.cfg.Tally.GetSession(ctx, &tally.GetSessionInput{SessionID: m.sessionID})
		if err != nil {
			return err
		}
		m.session = out.Session
		statusInput.Active = m.session.Active
		if m.cursor >= len(m.session.Players) {
			m.cursor = max(len(m.session.Players)-1, 0)
		}

	case models.ModeAutomatic:
		out, err := m.cfg.Detection.GetAnalysis(ctx, &detection.GetAnalysisInput{SessionID: m.sessionID})
		if err != nil {
			return err
		}
		m.analysis = out.Analysis
		statusInput.AnalysisStatus = m.analysis.Status

	case models.ModeResults:
		out, err := m.cfg.Results.GetReport(ctx, &results.GetReportInput{Result: m.state.Result})
		if err != nil {
			return err
		}
		m.report = out.Report

		headline := &messaging.GetResultsMessageInput{
			Contact:    m.report.Contact,
			TotalFalls: m.report.TotalFalls,
		}
		if m.report.TopPlayer != nil {
			headline.TopPlayerName = m.report.TopPlayer.Name
		}
		msg, err := m.cfg.Messaging.GetResultsMessage(ctx, headline)
		if err != nil {
			return err
		}
		m.headline = msg.Message
	}

	status, err := m.cfg.Messaging.GetStatusMessage(ctx, statusInput)
	if err != nil {
		return err
	}
	m.status = status.Message
	return nil
}

// fail shows err to the user. A nil error clears the previous one.
func (m *Model) fail(err error) {
	if err == nil {
		m.err = ""
		return
	}
	out, msgErr := m.cfg.Messaging.GetErrorMessage(m.ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		m.err = err.Error()
		return
	}
	m.err = out.Message
}

// do runs a service call and reloads the view after it
func (m Model) do(err error, note string) (tea.Model, tea.Cmd) {
	if err != nil {
		m.fail(err)
		return m, nil
	}
	m.note = note
	m.fail(m.refresh())
	return m, nil
}

func (m Model) finishAnalysis(msg analysisFinishedMsg) (tea.Model, tea.Cmd) {
	// the automatic view was left while the analysis ran
	if errors.Is(msg.err, context.Canceled) {
		return m, nil
	}
	if msg.err != nil {
		return m.do(msg.err, "")
	}

	_, err := m.cfg.Mode.Complete(m.ctx, &mode.CompleteInput{
		SessionID: m.sessionID,
		Result:    msg.result,
	})
	return m.do(err, "")
}
