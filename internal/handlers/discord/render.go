package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/messaging"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen  = 0x16a34a
	colorBlue   = 0x2563eb
	colorOrange = 0xea580c
	colorRed    = 0xdc2626

	// Discord caps select menus at 25 options
	maxSelectOptions = 25

	progressBarWidth = 20
)

// view is a rendered message, ready to be sent as a response or an edit
type view struct {
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

func (v *view) responseData() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds:     v.Embeds,
		Components: v.Components,
	}
}

func (v *view) webhookEdit() *discordgo.WebhookEdit {
	embeds := v.Embeds
	components := v.Components
	return &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	}
}

// presenter loads the state behind a channel and renders the matching view
type presenter struct {
	mode      mode.Service
	tally     tally.Service
	detection detection.Service
	results   results.Service
	messaging messaging.Service
}

// current renders whatever view the channel's session is on. The note is shown
// under the status line, typically commentary for the last action.
func (p *presenter) current(ctx context.Context, sessionID, note string) (*view, error) {
	state, err := p.mode.GetState(ctx, &mode.GetStateInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	switch state.State.Mode {
	case models.ModeManual:
		out, err := p.tally.GetSession(ctx, &tally.GetSessionInput{SessionID: sessionID})
		if err != nil {
			return nil, err
		}
		status, err := p.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
			Mode:   models.ModeManual,
			Active: out.Session.Active,
		})
		if err != nil {
			return nil, err
		}
		return renderManual(out.Session, status.Message, note), nil

	case models.ModeAutomatic:
		out, err := p.detection.GetAnalysis(ctx, &detection.GetAnalysisInput{SessionID: sessionID})
		if err != nil {
			return nil, err
		}
		return p.automatic(ctx, out.Analysis, note)

	case models.ModeResults:
		out, err := p.results.GetReport(ctx, &results.GetReportInput{Result: state.State.Result})
		if err != nil {
			return nil, err
		}
		headline := &messaging.GetResultsMessageInput{
			Contact:    out.Report.Contact,
			TotalFalls: out.Report.TotalFalls,
		}
		if out.Report.TopPlayer != nil {
			headline.TopPlayerName = out.Report.TopPlayer.Name
		}
		msg, err := p.messaging.GetResultsMessage(ctx, headline)
		if err != nil {
			return nil, err
		}
		return renderResults(out.Report, msg.Message, note), nil

	default:
		status, err := p.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
			Mode: models.ModeLanding,
		})
		if err != nil {
			return nil, err
		}
		return renderLanding(status.Message, note), nil
	}
}

func (p *presenter) automatic(ctx context.Context, analysis *models.Analysis, note string) (*view, error) {
	status, err := p.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Mode:           models.ModeAutomatic,
		AnalysisStatus: analysis.Status,
	})
	if err != nil {
		return nil, err
	}
	return renderAutomatic(analysis, status.Message, note), nil
}

// require fails with mode.ErrInvalidTransition unless the channel is on want
func (p *presenter) require(ctx context.Context, sessionID string, want models.Mode) error {
	state, err := p.mode.GetState(ctx, &mode.GetStateInput{SessionID: sessionID})
	if err != nil {
		return err
	}
	if state.State.Mode != want {
		return fmt.Errorf("%s action while on %s: %w", want, state.State.Mode, mode.ErrInvalidTransition)
	}
	return nil
}

// export encodes the result the channel is showing
func (p *presenter) export(ctx context.Context, sessionID string) (*results.ExportOutput, error) {
	state, err := p.mode.GetState(ctx, &mode.GetStateInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	out, err := p.results.Export(ctx, &results.ExportInput{Result: state.State.Result})
	if err != nil {
		return nil, fmt.Errorf("failed to export results: %w", err)
	}
	return out, nil
}

// explain turns a service error into text for the user
func (p *presenter) explain(ctx context.Context, err error) string {
	out, msgErr := p.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return err.Error()
	}
	return out.Message
}

func describe(status, note string) string {
	if note == "" {
		return status
	}
	return status + "\n\n" + note
}

// renderLanding renders the mode picker
func renderLanding(status, note string) *view {
	embed := &discordgo.MessageEmbed{
		Title:       "FootSlip",
		Description: describe(status, note),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Manual Tracking",
				Value: "Add players and tap to record each fall while a match clock runs.",
			},
			{
				Name:  "Automated Detection",
				Value: "Upload a match video with `/footslip analyze` and let detection count the falls.",
			},
		},
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Manual Tracking",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonSelectManual,
			Emoji:    &discordgo.ComponentEmoji{Name: "✋"},
		},
		discordgo.Button{
			Label:    "Automated Detection",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonSelectAutomatic,
			Emoji:    &discordgo.ComponentEmoji{Name: "🎥"},
		},
	}

	return &view{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	}
}

// renderManual renders the live tally
func renderManual(session *models.ManualSession, status, note string) *view {
	clockState := "⏸️ Paused"
	if session.Active {
		clockState = "🟢 Live"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Manual Fall Tracking",
		Description: describe(status, note),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Match Time",
				Value:  fmt.Sprintf("%s %s", results.FormatClock(session.ElapsedSeconds), clockState),
				Inline: true,
			},
			{
				Name:   "Total Falls",
				Value:  fmt.Sprintf("%d", session.TotalFalls()),
				Inline: true,
			},
			{
				Name:  "Players",
				Value: playerLines(session.Players),
			},
		},
	}

	clockButton := discordgo.Button{
		Label:    "Start Match",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonStartMatch,
		Disabled: len(session.Players) == 0,
		Emoji:    &discordgo.ComponentEmoji{Name: "▶️"},
	}
	if session.Active {
		clockButton = discordgo.Button{
			Label:    "Pause",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonPauseMatch,
			Emoji:    &discordgo.ComponentEmoji{Name: "⏸️"},
		}
	}

	buttons := []discordgo.MessageComponent{
		clockButton,
		discordgo.Button{
			Label:    "Reset",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonResetMatch,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
		},
		discordgo.Button{
			Label:    "Add Player",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonAddPlayer,
			Emoji:    &discordgo.ComponentEmoji{Name: "➕"},
		},
		discordgo.Button{
			Label:    "Finish Match",
			Style:    discordgo.DangerButton,
			CustomID: ButtonFinishMatch,
			Disabled: !session.Started(),
			Emoji:    &discordgo.ComponentEmoji{Name: "🏁"},
		},
		discordgo.Button{
			Label:    "Home",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonGoHome,
			Emoji:    &discordgo.ComponentEmoji{Name: "🏠"},
		},
	}

	components := []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
	if len(session.Players) > 0 {
		components = append(components,
			playerSelect(SelectRecordFall, "Record a fall", "🤕", session.Players),
			playerSelect(SelectUndoFall, "Undo a fall", "↩️", session.Players),
			playerSelect(SelectRemovePlayer, "Remove a player", "🗑️", session.Players),
		)
	}

	return &view{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

func playerLines(players []models.Player) string {
	if len(players) == 0 {
		return "No players added yet. Add players to start tracking falls."
	}

	var sb strings.Builder
	for i, p := range players {
		if i == maxSelectOptions {
			sb.WriteString(fmt.Sprintf("...and %d more", len(players)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("**%s**: %d\n", p.Name, p.Falls))
	}
	return sb.String()
}

func playerSelect(customID, placeholder, emoji string, players []models.Player) discordgo.ActionsRow {
	options := make([]discordgo.SelectMenuOption, 0, maxSelectOptions)
	for _, p := range players {
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       p.Name,
			Value:       p.ID,
			Description: fmt.Sprintf("%d falls", p.Falls),
			Emoji:       &discordgo.ComponentEmoji{Name: emoji},
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID,
				Placeholder: placeholder,
				Options:     options,
			},
		},
	}
}

// renderAutomatic renders the upload and analysis progress view
func renderAutomatic(analysis *models.Analysis, status, note string) *view {
	fields := []*discordgo.MessageEmbedField{}

	if analysis.File != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Video",
			Value: fmt.Sprintf("%s (%s)", analysis.File.Name, results.FormatFileSize(analysis.File.Size)),
		})
	} else {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Video",
			Value: "Attach a match video with `/footslip analyze`. Supported formats: MP4, MOV, AVI.",
		})
	}

	if analysis.Status != models.AnalysisStatusIdle {
		step := analysis.Step
		if step == "" {
			step = "Starting..."
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  step,
			Value: progressBar(analysis.Progress),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Automated Fall Detection",
		Description: describe(status, note),
		Color:       colorOrange,
		Fields:      fields,
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Start Analysis",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonStartAnalysis,
			Disabled: analysis.File == nil || analysis.Status != models.AnalysisStatusIdle,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔍"},
		},
		discordgo.Button{
			Label:    "Home",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonGoHome,
			Emoji:    &discordgo.ComponentEmoji{Name: "🏠"},
		},
	}

	return &view{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	}
}

// progressBar renders a percentage as a fixed width text bar
func progressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := progress * progressBarWidth / 100
	return fmt.Sprintf("`%s%s` %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarWidth-filled),
		progress)
}

// renderResults renders the report for a finished match
func renderResults(report *models.Report, headline, note string) *view {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Total Falls", Value: fmt.Sprintf("%d", report.TotalFalls), Inline: true},
		{Name: "Players", Value: fmt.Sprintf("%d", report.PlayerCount), Inline: true},
		{Name: "Average Falls", Value: report.AverageFalls, Inline: true},
		{Name: "Duration", Value: report.Duration, Inline: true},
	}

	if report.TopPlayer != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "🏆 Most Falls",
			Value: fmt.Sprintf("%s - %d falls", report.TopPlayer.Name, report.TopPlayer.Falls),
		})
	}

	fields = append(fields,
		&discordgo.MessageEmbedField{Name: "Player Statistics", Value: rankingLines(report.Ranking)},
		&discordgo.MessageEmbedField{Name: "Fall Rate", Value: report.FallRate + " falls per minute", Inline: true},
		&discordgo.MessageEmbedField{Name: "Clean Players", Value: fmt.Sprintf("%d player(s) with no falls", report.CleanPlayers), Inline: true},
		&discordgo.MessageEmbedField{Name: "Peak Performance", Value: peakLine(report.PeakFalls), Inline: true},
		&discordgo.MessageEmbedField{Name: "Match Quality", Value: report.Contact.Label(), Inline: true},
	)

	embed := &discordgo.MessageEmbed{
		Title:       "Match Results",
		Description: describe(headline, note),
		Color:       colorRed,
		Fields:      fields,
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Export",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonExport,
			Emoji:    &discordgo.ComponentEmoji{Name: "📥"},
		},
		discordgo.Button{
			Label:    "New Session",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonNewSession,
			Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
		},
	}

	return &view{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
	}
}

func rankingLines(ranking []models.RankedPlayer) string {
	if len(ranking) == 0 {
		return "No player data available"
	}

	var sb strings.Builder
	for _, r := range ranking {
		if r.Rank > maxSelectOptions {
			sb.WriteString(fmt.Sprintf("...and %d more", len(ranking)-maxSelectOptions))
			break
		}
		filled := int(r.Share * 10)
		sb.WriteString(fmt.Sprintf("#%d **%s** %d falls `%s%s`\n",
			r.Rank, r.Player.Name, r.Player.Falls,
			strings.Repeat("▰", filled), strings.Repeat("▱", 10-filled)))
	}
	return sb.String()
}

func peakLine(peak int) string {
	if peak > 0 {
		return fmt.Sprintf("Highest individual falls: %d", peak)
	}
	return "No falls recorded"
}
