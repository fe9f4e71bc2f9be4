package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/footslip/internal/app"
	"github.com/KirkDiggler/footslip/internal/common/logging"
	"github.com/KirkDiggler/footslip/internal/common/media"
	"github.com/KirkDiggler/footslip/internal/config"
	"github.com/KirkDiggler/footslip/internal/handlers/tui"
	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	exportDir  string
	noExport   bool
)

var rootCmd = &cobra.Command{
	Use:   "footslip",
	Short: "FootSlip - count player falls during a football match",
	Long: `FootSlip tallies how often each player falls during a match.

Run without arguments for the interactive terminal UI, where falls are counted
by hand against a match clock or detected from a match video.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [video]",
	Short: "Run automated fall detection on a video and export the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "footslip", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&exportDir, "out", "o", "", "Directory for exported results (default: export.dir)")
	analyzeCmd.Flags().BoolVar(&noExport, "no-export", false, "Print the report without writing the JSON file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, configures logging and builds the services
func setup(ctx context.Context, quiet bool) (*app.App, io.Closer, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if exportDir != "" {
		cfg.Export.Dir = exportDir
	}

	// stderr belongs to the terminal UI unless logs go to a file
	if quiet && cfg.Log.File == "" {
		cfg.Log.Level = "disabled"
	}

	logCloser, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(ctx, &app.Config{Settings: cfg})
	if err != nil {
		logCloser.Close()
		return nil, nil, err
	}
	return a, logCloser, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, logCloser, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	defer a.Close()

	model, err := tui.New(ctx, &tui.Config{
		Mode:      a.Mode,
		Tally:     a.Tally,
		Detection: a.Detection,
		Results:   a.Results,
		Messaging: a.Messaging,
		ExportDir: a.Settings.Export.Dir,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, logCloser, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	defer a.Close()

	out := cmd.OutOrStdout()
	sessionID := "cli"

	file, err := media.Probe(args[0])
	if err != nil {
		return err
	}

	if _, err := a.Mode.SelectMode(ctx, &mode.SelectModeInput{
		SessionID: sessionID,
		Mode:      models.ModeAutomatic,
	}); err != nil {
		return err
	}

	selected, err := a.Detection.SelectFile(ctx, &detection.SelectFileInput{
		SessionID:   sessionID,
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
	})
	if err != nil {
		return err
	}
	if !selected.Accepted {
		return fmt.Errorf("%s is not a video file", file.Name)
	}

	fmt.Fprintf(out, "Analyzing %s (%s)\n", file.Name, results.FormatFileSize(file.Size))
	run, err := a.Detection.RunAnalysis(ctx, &detection.RunAnalysisInput{
		SessionID: sessionID,
		OnProgress: func(checkpoint models.Checkpoint) {
			fmt.Fprintf(out, "[%3d%%] %s\n", checkpoint.Progress, checkpoint.Message)
		},
	})
	if err != nil {
		return err
	}

	completed, err := a.Mode.Complete(ctx, &mode.CompleteInput{
		SessionID: sessionID,
		Result:    run.Result,
	})
	if err != nil {
		return err
	}

	report, err := a.Results.GetReport(ctx, &results.GetReportInput{Result: completed.State.Result})
	if err != nil {
		return err
	}
	printReport(out, report.Report)

	if noExport {
		return nil
	}

	saved, err := a.Results.SaveExport(ctx, &results.SaveExportInput{
		Result: completed.State.Result,
		Dir:    a.Settings.Export.Dir,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nResults exported to %s\n", saved.Path)
	log.Debug().Str("path", saved.Path).Msg("export written")
	return nil
}

func printReport(out io.Writer, r *models.Report) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Match Results")
	fmt.Fprintf(out, "  Total Falls:   %d\n", r.TotalFalls)
	fmt.Fprintf(out, "  Players:       %d\n", r.PlayerCount)
	fmt.Fprintf(out, "  Average Falls: %s\n", r.AverageFalls)
	fmt.Fprintf(out, "  Duration:      %s\n", r.Duration)
	if r.TopPlayer != nil {
		fmt.Fprintf(out, "  Most Falls:    %s - %d falls\n", r.TopPlayer.Name, r.TopPlayer.Falls)
	}
	for _, rp := range r.Ranking {
		fmt.Fprintf(out, "  #%-3d %-20s %d\n", rp.Rank, rp.Player.Name, rp.Player.Falls)
	}
	fmt.Fprintf(out, "  Fall Rate:     %s falls per minute\n", r.FallRate)
	fmt.Fprintf(out, "  Match Quality: %s\n", r.Contact.Label())
}
