package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/footslip/internal/app"
	"github.com/KirkDiggler/footslip/internal/common/logging"
	"github.com/KirkDiggler/footslip/internal/config"
	"github.com/KirkDiggler/footslip/internal/handlers/discord"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}
	defer logCloser.Close()

	if err := cfg.ValidateDiscord(); err != nil {
		log.Fatal().Err(err).Msg("Invalid Discord config")
	}

	ctx := context.Background()
	application, err := app.New(ctx, &app.Config{Settings: cfg})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create services")
	}
	defer application.Close()

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.Discord.Token,
		ApplicationID:    cfg.Discord.ApplicationID,
		GuildID:          cfg.Discord.GuildID,
		ModeService:      application.Mode,
		TallyService:     application.Tally,
		DetectionService: application.Detection,
		ResultsService:   application.Results,
		MessagingService: application.Messaging,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
}
