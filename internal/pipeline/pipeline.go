// Package pipeline wires sources, analysis, and export into one run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuikisato/clipscout/internal/config"
	"github.com/yuikisato/clipscout/internal/parse"
	"github.com/yuikisato/clipscout/internal/ports"
	"github.com/yuikisato/clipscout/internal/ports/adapters/localfile"
	"github.com/yuikisato/clipscout/internal/ports/adapters/ytdlp"
	"github.com/yuikisato/clipscout/internal/types"
	"github.com/yuikisato/clipscout/internal/usecase"
)

type Config struct {
	// URL is a YouTube URL or bare video ID to fetch via yt-dlp. Local paths
	// below take precedence over fetching for their stream.
	URL          string
	ChatPath     string
	SubtitlePath string

	// OutDir receives the report JSON and candidate CSV.
	OutDir string
	// DataDir caches downloaded payloads. Defaults to "data".
	DataDir string

	YtDlpPath string
	Force     bool

	Settings config.Settings
	Logf     func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.URL == "" && c.ChatPath == "" && c.SubtitlePath == "" {
		return errors.New("nothing to analyze: need a URL, a chat file, or a subtitle file")
	}
	if c.URL != "" {
		if _, err := ytdlp.ExtractVideoID(c.URL); err != nil {
			return err
		}
	}
	if c.ChatPath != "" {
		if _, err := os.Stat(c.ChatPath); err != nil {
			return fmt.Errorf("stat chat file: %w", err)
		}
	}
	if c.SubtitlePath != "" {
		if _, err := os.Stat(c.SubtitlePath); err != nil {
			return fmt.Errorf("stat subtitle file: %w", err)
		}
	}
	return c.Settings.Validate()
}

type Result struct {
	VideoID       string
	Report        usecase.Report
	ReportPath    string
	CandidatesCSV string
}

// Run resolves both record streams, analyzes them, and writes the report
// artifacts. A stream that cannot be fetched is logged and skipped; the
// analysis runs on whatever arrived. The context is checked between stages
// only, since no stage is interruptible mid-computation.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	videoID := "local"
	if cfg.URL != "" {
		id, err := ytdlp.ExtractVideoID(cfg.URL)
		if err != nil {
			return Result{}, err
		}
		videoID = id
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	fetcher := ytdlp.New(cfg.YtDlpPath, dataDir, cfg.Force, logf)

	comments := fetchComments(ctx, chatSource(cfg, fetcher), videoID, logf)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	subtitles := fetchSubtitles(ctx, subtitleSource(cfg, fetcher), videoID, logf)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Live-chat replays stamp messages with wall-clock time; shift them to a
	// zero origin so they share the subtitle timeline.
	comments = parse.NormalizeComments(comments)

	logf("analyzing %d comments, %d subtitles", len(comments), len(subtitles))
	report, err := usecase.Analyze(usecase.Input{
		Comments:  comments,
		Subtitles: subtitles,
		Params:    analysisParams(cfg.Settings),
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{VideoID: videoID, Report: report}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, err
	}

	res.ReportPath = filepath.Join(outDir, videoID+"_report.json")
	if err := writeReport(res.ReportPath, report); err != nil {
		return Result{}, err
	}
	res.CandidatesCSV = filepath.Join(outDir, videoID+"_candidates.csv")
	if err := writeCandidatesCSV(res.CandidatesCSV, report.Candidates); err != nil {
		return Result{}, err
	}

	logf("report: %s", res.ReportPath)
	logf("candidates (%d): %s", len(report.Candidates), res.CandidatesCSV)
	return res, nil
}

func chatSource(cfg Config, fetcher *ytdlp.Adapter) ports.ChatSource {
	if cfg.ChatPath != "" {
		return localfile.ChatFile{Path: cfg.ChatPath}
	}
	if cfg.URL != "" {
		return fetcher
	}
	return nil
}

func subtitleSource(cfg Config, fetcher *ytdlp.Adapter) ports.SubtitleSource {
	if cfg.SubtitlePath != "" {
		return localfile.SubtitleFile{Path: cfg.SubtitlePath}
	}
	if cfg.URL != "" {
		return fetcher
	}
	return nil
}

func fetchComments(ctx context.Context, src ports.ChatSource, videoID string, logf func(string, ...any)) []types.CommentRecord {
	if src == nil {
		return nil
	}
	records, err := src.FetchChat(ctx, videoID)
	if err != nil {
		logf("chat stream unavailable: %v", err)
		return nil
	}
	logf("loaded %d comments", len(records))
	return records
}

func fetchSubtitles(ctx context.Context, src ports.SubtitleSource, videoID string, logf func(string, ...any)) []types.SubtitleRecord {
	if src == nil {
		return nil
	}
	records, err := src.FetchSubtitles(ctx, videoID)
	if err != nil {
		logf("subtitle stream unavailable: %v", err)
		return nil
	}
	logf("loaded %d subtitles", len(records))
	return records
}

func analysisParams(s config.Settings) usecase.Params {
	return usecase.Params{
		BinSize:          s.BinSize,
		PeakPercentile:   s.PeakPercentile,
		PeakMinGap:       s.PeakMinGap,
		MinClipDuration:  s.MinClipDuration,
		MaxClipDuration:  s.MaxClipDuration,
		SilenceGap:       s.SilenceGap,
		ReactionKeywords: s.ReactionKeywords,
		TopicMarkers:     s.TopicMarkers,
		TopCommenters:    s.TopCommenters,
	}
}

// ensure adapters implement ports
var _ ports.ChatSource = (*ytdlp.Adapter)(nil)
var _ ports.SubtitleSource = (*ytdlp.Adapter)(nil)
var _ ports.ChatSource = localfile.ChatFile{}
var _ ports.SubtitleSource = localfile.SubtitleFile{}
