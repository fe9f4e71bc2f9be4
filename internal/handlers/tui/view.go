package tui

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current page
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode() {
	case models.ModeManual:
		sb.WriteString(m.viewManual())
	case models.ModeAutomatic:
		sb.WriteString(m.viewAutomatic())
	case models.ModeResults:
		sb.WriteString(m.viewResults())
	default:
		sb.WriteString(m.viewLanding())
	}

	if m.inputKind != inputNone {
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}

	if m.note != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Note.Render(m.note))
		sb.WriteString("\n")
	}
	if m.err != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(m.err))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render(m.help()))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) help() string {
	if m.inputKind != inputNone {
		return "enter confirm • esc cancel"
	}
	switch m.mode() {
	case models.ModeManual:
		return "a add • ↑/↓ select • +/enter fall • - undo • x remove • s start/pause • r reset • f finish • esc home • q quit"
	case models.ModeAutomatic:
		return "o open video • enter analyze • esc home • q quit"
	case models.ModeResults:
		return "e export • n new session • q quit"
	default:
		return "m manual • a automatic • ↑/↓ enter select • q quit"
	}
}

func (m Model) viewLanding() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("FootSlip"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(m.status))
	sb.WriteString("\n\n")

	options := []struct {
		name string
		desc string
	}{
		{name: "Manual Tracking", desc: "Add players and record each fall while a match clock runs."},
		{name: "Automated Detection", desc: "Pick a match video and let detection count the falls."},
	}
	for i, opt := range options {
		line := fmt.Sprintf("  %s\n    %s", opt.name, opt.desc)
		if i == m.cursor {
			line = m.styles.Selected.Render(fmt.Sprintf("› %s", opt.name)) + "\n    " + opt.desc
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewManual() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Manual Fall Tracking"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(m.status))
	sb.WriteString("\n\n")

	if m.session == nil {
		return sb.String()
	}

	clockState := "paused"
	if m.session.Active {
		clockState = m.styles.Live.Render("live")
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Card.Render(fmt.Sprintf("Match Time\n%s %s", m.styles.Value.Render(results.FormatClock(m.session.ElapsedSeconds)), clockState)),
		m.styles.Card.Render(fmt.Sprintf("Total Falls\n%s", m.styles.Value.Render(fmt.Sprintf("%d", m.session.TotalFalls())))),
	)
	sb.WriteString(cards)
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("Players (%d)", len(m.session.Players))))
	sb.WriteString("\n")
	if len(m.session.Players) == 0 {
		sb.WriteString("No players added yet. Add players to start tracking falls.\n")
		return sb.String()
	}

	for i, p := range m.session.Players {
		line := fmt.Sprintf("  %-24s %3d", p.Name, p.Falls)
		if p.LastFallAt != nil {
			line += "  last " + p.LastFallAt.Format("15:04:05")
		}
		if i == m.cursor {
			line = m.styles.Selected.Render("›" + line[1:])
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewAutomatic() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Automated Fall Detection"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(m.status))
	sb.WriteString("\n\n")

	if m.analysis == nil {
		return sb.String()
	}

	if m.analysis.File == nil {
		sb.WriteString("No video selected. Supported formats: MP4, MOV, AVI.\n")
	} else {
		sb.WriteString(m.styles.Card.Render(fmt.Sprintf("%s\n%s",
			m.styles.Value.Render(m.analysis.File.Name),
			results.FormatFileSize(m.analysis.File.Size))))
		sb.WriteString("\n")
	}

	if m.analysis.Status != models.AnalysisStatusIdle {
		sb.WriteString("\n")
		sb.WriteString(m.analysis.Step)
		sb.WriteString("\n")
		sb.WriteString(m.bar.ViewAs(float64(m.analysis.Progress) / 100))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewResults() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Match Results"))
	sb.WriteString("\n")

	r := m.report
	if r == nil {
		return sb.String()
	}

	sb.WriteString(m.styles.Status.Render(m.headline))
	sb.WriteString("\n\n")

	card := func(label, value string) string {
		return m.styles.Card.Render(label + "\n" + m.styles.Value.Render(value))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Falls", fmt.Sprintf("%d", r.TotalFalls)),
		card("Players", fmt.Sprintf("%d", r.PlayerCount)),
		card("Average Falls", r.AverageFalls),
		card("Duration", r.Duration),
	))
	sb.WriteString("\n\n")

	if r.TopPlayer != nil {
		sb.WriteString(m.styles.Header.Render("Most Falls"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s - %d falls\n\n", r.TopPlayer.Name, r.TopPlayer.Falls))
	}

	sb.WriteString(m.styles.Header.Render("Player Statistics"))
	sb.WriteString("\n")
	if len(r.Ranking) == 0 {
		sb.WriteString("No player data available\n")
	}
	for _, rp := range r.Ranking {
		sb.WriteString(fmt.Sprintf("#%-3d %-24s %3d  %s\n",
			rp.Rank, rp.Player.Name, rp.Player.Falls, shareBar(rp.Share, 20)))
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Header.Render("Match Insights"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Fall Rate:        %s falls per minute\n", r.FallRate))
	sb.WriteString(fmt.Sprintf("Clean Players:    %d player(s) with no falls\n", r.CleanPlayers))
	if r.PeakFalls > 0 {
		sb.WriteString(fmt.Sprintf("Peak Performance: Highest individual falls: %d\n", r.PeakFalls))
	} else {
		sb.WriteString("Peak Performance: No falls recorded\n")
	}
	sb.WriteString(fmt.Sprintf("Match Quality:    %s\n", r.Contact.Label()))
	return sb.String()
}

func shareBar(share float64, width int) string {
	filled := int(share * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
