package tui

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/footslip/internal/common/media"
	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/messaging"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" {
		return m, tea.Quit
	}

	switch m.mode() {
	case models.ModeManual:
		return m.handleManualKey(key)
	case models.ModeAutomatic:
		return m.handleAutomaticKey(key)
	case models.ModeResults:
		return m.handleResultsKey(key)
	default:
		return m.handleLandingKey(key)
	}
}

func (m Model) goHome() (tea.Model, tea.Cmd) {
	_, err := m.cfg.Mode.GoHome(m.ctx, &mode.GoHomeInput{SessionID: m.sessionID})
	m.cursor = 0
	return m.do(err, "")
}

func (m Model) handleLandingKey(key string) (tea.Model, tea.Cmd) {
	var target models.Mode
	switch key {
	case "up", "k":
		m.cursor = 0
		return m, nil
	case "down", "j":
		m.cursor = 1
		return m, nil
	case "m":
		target = models.ModeManual
	case "a":
		target = models.ModeAutomatic
	case "enter":
		target = models.ModeManual
		if m.cursor == 1 {
			target = models.ModeAutomatic
		}
	default:
		return m, nil
	}

	_, err := m.cfg.Mode.SelectMode(m.ctx, &mode.SelectModeInput{
		SessionID: m.sessionID,
		Mode:      target,
	})
	m.cursor = 0
	return m.do(err, "")
}

func (m Model) selectedPlayer() (models.Player, bool) {
	if m.session == nil || m.cursor < 0 || m.cursor >= len(m.session.Players) {
		return models.Player{}, false
	}
	return m.session.Players[m.cursor], true
}

func (m Model) handleManualKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "h":
		return m.goHome()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.session != nil && m.cursor < len(m.session.Players)-1 {
			m.cursor++
		}
		return m, nil
	case "a":
		return m.openInput(inputPlayer, "Enter player name")
	case "+", "=", "enter", " ":
		return m.adjustFalls(1)
	case "-":
		return m.adjustFalls(-1)
	case "x", "delete":
		p, ok := m.selectedPlayer()
		if !ok {
			return m, nil
		}
		_, err := m.cfg.Tally.RemovePlayer(m.ctx, &tally.RemovePlayerInput{
			SessionID: m.sessionID,
			PlayerID:  p.ID,
		})
		return m.do(err, fmt.Sprintf("Removed %s.", p.Name))
	case "s":
		if m.session != nil && m.session.Active {
			_, err := m.cfg.Tally.PauseMatch(m.ctx, &tally.PauseMatchInput{SessionID: m.sessionID})
			return m.do(err, "Match paused.")
		}
		out, err := m.cfg.Tally.StartMatch(m.ctx, &tally.StartMatchInput{SessionID: m.sessionID})
		note := "Match started."
		if err == nil && out.Resumed {
			note = "Match resumed."
		}
		return m.do(err, note)
	case "r":
		_, err := m.cfg.Tally.ResetMatch(m.ctx, &tally.ResetMatchInput{SessionID: m.sessionID})
		return m.do(err, "Match reset. All falls cleared.")
	case "f":
		out, err := m.cfg.Tally.FinishMatch(m.ctx, &tally.FinishMatchInput{SessionID: m.sessionID})
		if err != nil {
			return m.do(err, "")
		}
		_, err = m.cfg.Mode.Complete(m.ctx, &mode.CompleteInput{
			SessionID: m.sessionID,
			Result:    out.Result,
		})
		return m.do(err, "")
	}
	return m, nil
}

func (m Model) adjustFalls(delta int) (tea.Model, tea.Cmd) {
	p, ok := m.selectedPlayer()
	if !ok {
		return m, nil
	}

	out, err := m.cfg.Tally.AdjustFalls(m.ctx, &tally.AdjustFallsInput{
		SessionID: m.sessionID,
		PlayerID:  p.ID,
		Delta:     delta,
	})
	if err != nil || delta < 0 {
		return m.do(err, fmt.Sprintf("Removed a fall from %s.", p.Name))
	}

	msg, err := m.cfg.Messaging.GetFallMessage(m.ctx, &messaging.GetFallMessageInput{
		PlayerName: out.Player.Name,
		Falls:      out.Player.Falls,
	})
	if err != nil {
		return m.do(err, "")
	}
	return m.do(nil, msg.Message)
}

func (m Model) handleAutomaticKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "h":
		return m.goHome()
	case "o":
		return m.openInput(inputFile, "path/to/match.mp4")
	case "enter", "s":
		ch := make(chan analysisFinishedMsg, 1)
		_, err := m.cfg.Detection.StartAnalysis(m.ctx, &detection.StartAnalysisInput{
			SessionID: m.sessionID,
			OnFinish: func(result *models.SessionResult, err error) {
				ch <- analysisFinishedMsg{result: result, err: err}
			},
		})
		if err != nil {
			return m.do(err, "")
		}
		model, _ := m.do(nil, "")
		return model, waitForAnalysis(ch)
	}
	return m, nil
}

func (m Model) handleResultsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "e":
		out, err := m.cfg.Results.SaveExport(m.ctx, &results.SaveExportInput{
			Result: m.state.Result,
			Dir:    m.cfg.ExportDir,
		})
		if err != nil {
			return m.do(err, "")
		}
		return m.do(nil, "Results exported to "+out.Path)
	case "n", "esc":
		_, err := m.cfg.Mode.NewSession(m.ctx, &mode.NewSessionInput{SessionID: m.sessionID})
		return m.do(err, "")
	}
	return m, nil
}

func (m Model) openInput(kind inputKind, placeholder string) (tea.Model, tea.Cmd) {
	m.inputKind = kind
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.err = ""
	return m, m.input.Focus()
}

func (m Model) closeInput() Model {
	m.inputKind = inputNone
	m.input.Blur()
	m.input.Reset()
	return m
}

// updateInput feeds keys to the text input until it is submitted or dismissed
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeInput(), nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		kind := m.inputKind
		m = m.closeInput()
		if kind == inputPlayer {
			return m.addPlayer(value)
		}
		return m.selectFile(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) addPlayer(name string) (tea.Model, tea.Cmd) {
	out, err := m.cfg.Tally.AddPlayer(m.ctx, &tally.AddPlayerInput{
		SessionID: m.sessionID,
		Name:      name,
	})
	if err != nil {
		return m.do(err, "")
	}
	if !out.Added {
		return m.do(nil, "Enter a player name to add them.")
	}
	m.cursor = len(out.Session.Players) - 1
	return m.do(nil, out.Player.Name+" joined the match.")
}

func (m Model) selectFile(path string) (tea.Model, tea.Cmd) {
	if path == "" {
		return m, nil
	}

	file, err := media.Probe(path)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}

	out, err := m.cfg.Detection.SelectFile(m.ctx, &detection.SelectFileInput{
		SessionID:   m.sessionID,
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
	})
	if err != nil {
		return m.do(err, "")
	}
	if !out.Accepted {
		m.err = "Please select a valid video file."
		return m, nil
	}
	return m.do(nil, "")
}
