package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	"github.com/bwmarrin/discordgo"
)

// FootslipCommand handles the /footslip command
type FootslipCommand struct {
	BaseCommand
	presenter *presenter
}

// NewFootslipCommand creates a new footslip command handler
func NewFootslipCommand(p *presenter) *FootslipCommand {
	return &FootslipCommand{
		BaseCommand: BaseCommand{
			Name:        "footslip",
			Description: "Track player falls during a football match",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Show the FootSlip panel for this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a player to the manual tally",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Player name",
							Required:    true,
							MaxLength:   maxPlayerNameLength,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "analyze",
					Description: "Upload a match video for automated fall detection",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "video",
							Description: "Match video (MP4, MOV, AVI)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "home",
					Description: "Leave the current view and return to the start",
				},
			},
		},
		presenter: p,
	}
}

// Handle processes a Discord interaction for the footslip command
func (c *FootslipCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]

	switch sub.Name {
	case "start":
		return c.show(ctx, s, i, "")
	case "add":
		return c.handleAdd(ctx, s, i, optionString(sub.Options, "name"))
	case "analyze":
		return c.handleAnalyze(ctx, s, i, attachmentOption(data, sub.Options, "video"))
	case "home":
		if _, err := c.presenter.mode.GoHome(ctx, &mode.GoHomeInput{SessionID: i.ChannelID}); err != nil {
			return RespondWithError(s, i, c.presenter.explain(ctx, err))
		}
		return c.show(ctx, s, i, "")
	default:
		return errors.New("unknown subcommand")
	}
}

// show posts the channel's current view as a new message
func (c *FootslipCommand) show(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, note string) error {
	v, err := c.presenter.current(ctx, i.ChannelID, note)
	if err != nil {
		return RespondWithError(s, i, c.presenter.explain(ctx, err))
	}
	return RespondWithView(s, i, v)
}

// enter switches a landing session to target. Sessions already there are left alone.
func (c *FootslipCommand) enter(ctx context.Context, sessionID string, target models.Mode) error {
	state, err := c.presenter.mode.GetState(ctx, &mode.GetStateInput{SessionID: sessionID})
	if err != nil {
		return err
	}
	if state.State.Mode == target {
		return nil
	}

	_, err = c.presenter.mode.SelectMode(ctx, &mode.SelectModeInput{
		SessionID: sessionID,
		Mode:      target,
	})
	return err
}

func (c *FootslipCommand) handleAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, name string) error {
	if err := c.enter(ctx, i.ChannelID, models.ModeManual); err != nil {
		return RespondWithError(s, i, c.presenter.explain(ctx, err))
	}

	out, err := c.presenter.tally.AddPlayer(ctx, &tally.AddPlayerInput{
		SessionID: i.ChannelID,
		Name:      name,
	})
	if err != nil {
		return RespondWithError(s, i, c.presenter.explain(ctx, err))
	}

	if !out.Added {
		return RespondWithEphemeralMessage(s, i, "Enter a player name to add them.")
	}
	return c.show(ctx, s, i, out.Player.Name+" joined the match.")
}

func (c *FootslipCommand) handleAnalyze(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, attachment *discordgo.MessageAttachment) error {
	if attachment == nil {
		return RespondWithEphemeralMessage(s, i, "Attach a match video to analyze.")
	}

	if err := c.enter(ctx, i.ChannelID, models.ModeAutomatic); err != nil {
		return RespondWithError(s, i, c.presenter.explain(ctx, err))
	}

	out, err := c.presenter.detection.SelectFile(ctx, &detection.SelectFileInput{
		SessionID:   i.ChannelID,
		Name:        attachment.Filename,
		ContentType: attachment.ContentType,
		Size:        int64(attachment.Size),
	})
	if err != nil {
		return RespondWithError(s, i, c.presenter.explain(ctx, err))
	}

	if !out.Accepted {
		return RespondWithEphemeralMessage(s, i, "Please select a valid video file.")
	}
	return c.show(ctx, s, i, "Video ready. Press Start Analysis when you're set.")
}

func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// attachmentOption resolves an attachment option to the uploaded file
func attachmentOption(data discordgo.ApplicationCommandInteractionData, options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.MessageAttachment {
	if data.Resolved == nil {
		return nil
	}
	for _, opt := range options {
		if opt.Name != name || opt.Type != discordgo.ApplicationCommandOptionAttachment {
			continue
		}
		id, ok := opt.Value.(string)
		if !ok {
			return nil
		}
		return data.Resolved.Attachments[id]
	}
	return nil
}
