package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	clock clock.Clock
}

// New creates a new results service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		clock: cfg.Clock,
	}, nil
}

// GetReport derives the statistics shown for a session result
func (s *service) GetReport(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
	if input == nil || input.Result == nil {
		return nil, ErrNilResult
	}

	return &GetReportOutput{
		Report: BuildReport(input.Result),
	}, nil
}

// BuildReport computes the report for a result. Totals are recomputed from the
// players rather than trusted from the result.
func BuildReport(result *models.SessionResult) *models.Report {
	players := models.ClonePlayers(result.Players)
	total := models.SumFalls(players)

	report := &models.Report{
		TotalFalls:   total,
		PlayerCount:  len(players),
		MaxFalls:     1,
		AverageFalls: averageFalls(total, len(players)),
		Duration:     FormatDuration(result.MatchDuration),
		FallRate:     "0",
		Ranking:      make([]models.RankedPlayer, 0, len(players)),
	}

	for _, p := range players {
		if p.Falls > report.PeakFalls {
			report.PeakFalls = p.Falls
		}
		if p.Falls == 0 {
			report.CleanPlayers++
		}
	}
	if report.PeakFalls > report.MaxFalls {
		report.MaxFalls = report.PeakFalls
	}

	if result.MatchDuration > 0 {
		rate := float64(total) / float64(result.MatchDuration) * 60
		report.FallRate = formatFixed(rate, 2)
	}

	switch {
	case total < len(players):
		report.Contact = models.ContactLow
	case total > len(players)*2:
		report.Contact = models.ContactHigh
	default:
		report.Contact = models.ContactModerate
	}

	ranked := models.ClonePlayers(players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Falls > ranked[j].Falls
	})
	for i, p := range ranked {
		report.Ranking = append(report.Ranking, models.RankedPlayer{
			Rank:   i + 1,
			Player: p,
			Share:  float64(p.Falls) / float64(report.MaxFalls),
		})
	}

	if len(ranked) > 0 && ranked[0].Falls > 0 {
		top := ranked[0].Clone()
		report.TopPlayer = &top
	}

	return report
}

// Export builds the JSON summary document and its file name
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil || input.Result == nil {
		return nil, ErrNilResult
	}

	now := s.clock.Now()
	summary := BuildSummary(input.Result)
	summary.GeneratedAt = now.UTC().Format(GeneratedAtLayout)

	data, err := EncodeSummary(summary)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Summary:  summary,
		Data:     data,
		FileName: fmt.Sprintf("%s%d.json", FileNamePrefix, now.UnixMilli()),
	}, nil
}

// SaveExport writes the JSON summary into a directory
func (s *service) SaveExport(ctx context.Context, input *SaveExportInput) (*SaveExportOutput, error) {
	if input == nil || input.Result == nil {
		return nil, ErrNilResult
	}

	if input.Dir == "" {
		return nil, ErrEmptyDir
	}

	export, err := s.Export(ctx, &ExportInput{Result: input.Result})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(input.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(input.Dir, export.FileName)
	if err := os.WriteFile(path, export.Data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	log.Info().Str("path", path).Int("total_falls", export.Summary.TotalFalls).Msg("results exported")

	return &SaveExportOutput{
		Path:     path,
		FileName: export.FileName,
	}, nil
}

// BuildSummary maps a result onto the export document, without GeneratedAt
func BuildSummary(result *models.SessionResult) *models.Summary {
	players := make([]models.SummaryPlayer, 0, len(result.Players))
	for _, p := range result.Players {
		players = append(players, models.SummaryPlayer{
			Name:  p.Name,
			Falls: p.Falls,
		})
	}

	total := models.SumFalls(result.Players)
	return &models.Summary{
		MatchDuration: FormatDuration(result.MatchDuration),
		TotalFalls:    total,
		AverageFalls:  averageFalls(total, len(players)),
		Players:       players,
	}
}

// EncodeSummary renders the document with two space indentation and no HTML escaping
func EncodeSummary(summary *models.Summary) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func averageFalls(total, players int) string {
	if players == 0 {
		return "0"
	}
	return formatFixed(float64(total)/float64(players), 1)
}
