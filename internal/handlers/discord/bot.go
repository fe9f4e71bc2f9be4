package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/messaging"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot represents the Discord bot instance. Each channel holds one FootSlip
// session, keyed by the channel ID.
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	presenter  *presenter
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	ModeService      mode.Service
	TallyService     tally.Service
	DetectionService detection.Service
	ResultsService   results.Service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	p, err := newPresenter(cfg)
	if err != nil {
		return nil, err
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		presenter:  p,
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

func newPresenter(cfg *Config) (*presenter, error) {
	switch {
	case cfg.ModeService == nil:
		return nil, errors.New("mode service cannot be nil")
	case cfg.TallyService == nil:
		return nil, errors.New("tally service cannot be nil")
	case cfg.DetectionService == nil:
		return nil, errors.New("detection service cannot be nil")
	case cfg.ResultsService == nil:
		return nil, errors.New("results service cannot be nil")
	case cfg.MessagingService == nil:
		return nil, errors.New("messaging service cannot be nil")
	}

	return &presenter{
		mode:      cfg.ModeService,
		tally:     cfg.TallyService,
		detection: cfg.DetectionService,
		results:   cfg.ResultsService,
		messaging: cfg.MessagingService,
	}, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewFootslipCommand(b.presenter)); err != nil {
		return fmt.Errorf("failed to register footslip command: %w", err)
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Error().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		} else {
			log.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. Commands are registered
// for GuildID when set, globally otherwise.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	if guildID != "" {
		log.Info().Str("command", cmd.GetName()).Str("guild_id", guildID).Msg("registering command for guild")
	} else {
		log.Info().Str("command", cmd.GetName()).Msg("registering command globally")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().Str("command", cmd.GetName()).Str("command_id", createdCmd.ID).Msg("registered command")

	return nil
}

// Component custom IDs
const (
	ButtonSelectManual    = "select_manual"
	ButtonSelectAutomatic = "select_automatic"
	ButtonGoHome          = "go_home"
	ButtonStartMatch      = "start_match"
	ButtonPauseMatch      = "pause_match"
	ButtonResetMatch      = "reset_match"
	ButtonAddPlayer       = "add_player"
	ButtonFinishMatch     = "finish_match"
	ButtonStartAnalysis   = "start_analysis"
	ButtonExport          = "export_results"
	ButtonNewSession      = "new_session"

	// Select menu custom IDs
	SelectRecordFall   = "record_fall"
	SelectUndoFall     = "undo_fall"
	SelectRemovePlayer = "remove_player"

	// Modal custom IDs
	ModalAddPlayer  = "add_player_modal"
	InputPlayerName = "player_name"
)

const maxPlayerNameLength = 64

// componentModes maps each counting or results control to the view it belongs to
var componentModes = map[string]models.Mode{
	ButtonStartMatch:    models.ModeManual,
	ButtonPauseMatch:    models.ModeManual,
	ButtonResetMatch:    models.ModeManual,
	ButtonAddPlayer:     models.ModeManual,
	ButtonFinishMatch:   models.ModeManual,
	SelectRecordFall:    models.ModeManual,
	SelectUndoFall:      models.ModeManual,
	SelectRemovePlayer:  models.ModeManual,
	ButtonStartAnalysis: models.ModeAutomatic,
	ButtonExport:        models.ModeResults,
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and select menus
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("error handling component interaction")
		}
	case discordgo.InteractionModalSubmit:
		if err := b.handleModalSubmit(s, i); err != nil {
			log.Error().Err(err).Str("custom_id", i.ModalSubmitData().CustomID).Msg("error handling modal submit")
		}
	}
}

// handleComponentInteraction handles button clicks and select menu choices
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	data := i.MessageComponentData()
	sessionID := i.ChannelID

	// buttons on an old message may belong to a view the channel has left
	if owner, ok := componentModes[data.CustomID]; ok {
		if err := b.presenter.require(ctx, sessionID, owner); err != nil {
			return b.update(ctx, s, i, "", err)
		}
	}

	switch data.CustomID {
	case ButtonSelectManual:
		return b.handleSelectMode(ctx, s, i, models.ModeManual)
	case ButtonSelectAutomatic:
		return b.handleSelectMode(ctx, s, i, models.ModeAutomatic)
	case ButtonGoHome:
		_, err := b.presenter.mode.GoHome(ctx, &mode.GoHomeInput{SessionID: sessionID})
		return b.update(ctx, s, i, "", err)
	case ButtonNewSession:
		_, err := b.presenter.mode.NewSession(ctx, &mode.NewSessionInput{SessionID: sessionID})
		return b.update(ctx, s, i, "", err)
	case ButtonStartMatch:
		_, err := b.presenter.tally.StartMatch(ctx, &tally.StartMatchInput{SessionID: sessionID})
		return b.update(ctx, s, i, "", err)
	case ButtonPauseMatch:
		_, err := b.presenter.tally.PauseMatch(ctx, &tally.PauseMatchInput{SessionID: sessionID})
		return b.update(ctx, s, i, "", err)
	case ButtonResetMatch:
		_, err := b.presenter.tally.ResetMatch(ctx, &tally.ResetMatchInput{SessionID: sessionID})
		return b.update(ctx, s, i, "Match reset. All falls cleared.", err)
	case ButtonAddPlayer:
		return respondWithAddPlayerModal(s, i)
	case ButtonFinishMatch:
		return b.handleFinishMatch(ctx, s, i)
	case SelectRecordFall:
		return b.handleAdjustFalls(ctx, s, i, data.Values, 1)
	case SelectUndoFall:
		return b.handleAdjustFalls(ctx, s, i, data.Values, -1)
	case SelectRemovePlayer:
		return b.handleRemovePlayer(ctx, s, i, data.Values)
	case ButtonStartAnalysis:
		return b.handleStartAnalysis(ctx, s, i)
	case ButtonExport:
		return b.handleExport(ctx, s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", data.CustomID))
	}
}

// update redraws the message a component belongs to, or reports err to the
// user without touching the message
func (b *Bot) update(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, note string, err error) error {
	if err != nil {
		log.Warn().Err(err).Str("channel_id", i.ChannelID).Msg("action rejected")
		return RespondWithError(s, i, b.presenter.explain(ctx, err))
	}

	v, err := b.presenter.current(ctx, i.ChannelID, note)
	if err != nil {
		return RespondWithError(s, i, b.presenter.explain(ctx, err))
	}
	return UpdateWithView(s, i, v)
}

func (b *Bot) handleSelectMode(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, target models.Mode) error {
	_, err := b.presenter.mode.SelectMode(ctx, &mode.SelectModeInput{
		SessionID: i.ChannelID,
		Mode:      target,
	})
	return b.update(ctx, s, i, "", err)
}

func (b *Bot) handleAdjustFalls(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, values []string, delta int) error {
	if len(values) == 0 {
		return RespondWithError(s, i, "No player selected.")
	}

	out, err := b.presenter.tally.AdjustFalls(ctx, &tally.AdjustFallsInput{
		SessionID: i.ChannelID,
		PlayerID:  values[0],
		Delta:     delta,
	})
	if err != nil {
		return b.update(ctx, s, i, "", err)
	}

	note := fmt.Sprintf("Removed a fall from %s.", out.Player.Name)
	if delta > 0 {
		msg, err := b.presenter.messaging.GetFallMessage(ctx, &messaging.GetFallMessageInput{
			PlayerName: out.Player.Name,
			Falls:      out.Player.Falls,
		})
		if err != nil {
			return b.update(ctx, s, i, "", err)
		}
		note = msg.Message
	}

	return b.update(ctx, s, i, note, nil)
}

func (b *Bot) handleRemovePlayer(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, values []string) error {
	if len(values) == 0 {
		return RespondWithError(s, i, "No player selected.")
	}

	_, err := b.presenter.tally.RemovePlayer(ctx, &tally.RemovePlayerInput{
		SessionID: i.ChannelID,
		PlayerID:  values[0],
	})
	return b.update(ctx, s, i, "", err)
}

func (b *Bot) handleFinishMatch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := b.presenter.tally.FinishMatch(ctx, &tally.FinishMatchInput{SessionID: i.ChannelID})
	if err != nil {
		return b.update(ctx, s, i, "", err)
	}

	_, err = b.presenter.mode.Complete(ctx, &mode.CompleteInput{
		SessionID: i.ChannelID,
		Result:    out.Result,
	})
	return b.update(ctx, s, i, "", err)
}

// handleStartAnalysis starts the background analysis and keeps editing the
// original message as checkpoints are reached
func (b *Bot) handleStartAnalysis(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sessionID := i.ChannelID
	interaction := i.Interaction

	edit := func(v *view) {
		if _, err := s.InteractionResponseEdit(interaction, v.webhookEdit()); err != nil {
			log.Error().Err(err).Str("channel_id", sessionID).Msg("failed to edit analysis message")
		}
	}

	out, err := b.presenter.detection.StartAnalysis(ctx, &detection.StartAnalysisInput{
		SessionID: sessionID,
		OnProgress: func(checkpoint models.Checkpoint) {
			bg := context.Background()
			current, err := b.presenter.detection.GetAnalysis(bg, &detection.GetAnalysisInput{SessionID: sessionID})
			if err != nil {
				log.Error().Err(err).Str("channel_id", sessionID).Msg("failed to load analysis")
				return
			}
			v, err := b.presenter.automatic(bg, current.Analysis, "")
			if err != nil {
				return
			}
			edit(v)
		},
		OnFinish: func(result *models.SessionResult, err error) {
			bg := context.Background()
			if errors.Is(err, context.Canceled) {
				// the view was left, whoever left it redrew the message
				return
			}

			note := ""
			if err != nil {
				note = b.presenter.explain(bg, err)
			} else if _, err := b.presenter.mode.Complete(bg, &mode.CompleteInput{
				SessionID: sessionID,
				Result:    result,
			}); err != nil {
				log.Error().Err(err).Str("channel_id", sessionID).Msg("failed to complete analysis")
				note = b.presenter.explain(bg, err)
			}

			v, err := b.presenter.current(bg, sessionID, note)
			if err != nil {
				log.Error().Err(err).Str("channel_id", sessionID).Msg("failed to render results")
				return
			}
			edit(v)
		},
	})
	if err != nil {
		return b.update(ctx, s, i, "", err)
	}

	v, err := b.presenter.automatic(ctx, out.Analysis, "")
	if err != nil {
		return RespondWithError(s, i, b.presenter.explain(ctx, err))
	}
	return UpdateWithView(s, i, v)
}

func (b *Bot) handleExport(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := b.presenter.export(ctx, i.ChannelID)
	if err != nil {
		log.Error().Err(err).Str("channel_id", i.ChannelID).Msg("failed to export results")
		return RespondWithError(s, i, b.presenter.explain(ctx, err))
	}

	return RespondWithFile(s, i, "Here are the match results.", out.FileName, "application/json", out.Data)
}

func respondWithAddPlayerModal(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalAddPlayer,
			Title:    "Add Player",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    InputPlayerName,
							Label:       "Player name",
							Style:       discordgo.TextInputShort,
							Placeholder: "Enter player name",
							Required:    true,
							MaxLength:   maxPlayerNameLength,
						},
					},
				},
			},
		},
	})
}

// handleModalSubmit handles the add player form
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	data := i.ModalSubmitData()
	if data.CustomID != ModalAddPlayer {
		return RespondWithError(s, i, fmt.Sprintf("Unknown form: %s", data.CustomID))
	}

	if err := b.presenter.require(ctx, i.ChannelID, models.ModeManual); err != nil {
		return b.update(ctx, s, i, "", err)
	}

	out, err := b.presenter.tally.AddPlayer(ctx, &tally.AddPlayerInput{
		SessionID: i.ChannelID,
		Name:      modalValue(data, InputPlayerName),
	})
	if err != nil {
		return b.update(ctx, s, i, "", err)
	}

	note := "Enter a player name to add them."
	if out.Added {
		note = fmt.Sprintf("%s joined the match.", out.Player.Name)
	}
	return b.update(ctx, s, i, note, nil)
}

// modalValue finds a text input's value in a submitted modal
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok && input.CustomID == customID {
				return strings.TrimSpace(input.Value)
			}
		}
	}
	return ""
}
