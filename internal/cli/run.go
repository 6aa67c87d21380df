package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuikisato/clipscout/internal/config"
	"github.com/yuikisato/clipscout/internal/pipeline"
)

func run(cmd *cobra.Command, url string) error {
	chatPath, _ := cmd.Flags().GetString("chat")
	subsPath, _ := cmd.Flags().GetString("subs")
	configPath, _ := cmd.Flags().GetString("config")
	outDir, _ := cmd.Flags().GetString("out")
	dataDir, _ := cmd.Flags().GetString("data")
	minDur, _ := cmd.Flags().GetFloat64("min")
	maxDur, _ := cmd.Flags().GetFloat64("max")
	top, _ := cmd.Flags().GetInt("top")
	force, _ := cmd.Flags().GetBool("force")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if minDur > 0 {
		settings.MinClipDuration = minDur
	}
	if maxDur > 0 {
		settings.MaxClipDuration = maxDur
	}

	logf := func(string, ...any) {}
	if verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		URL:          url,
		ChatPath:     chatPath,
		SubtitlePath: subsPath,
		OutDir:       outDir,
		DataDir:      dataDir,
		YtDlpPath:    getenvDefault("YTDLP_PATH", "yt-dlp"),
		Force:        force,
		Settings:     settings,
		Logf:         logf,
	}

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	render(cmd.OutOrStdout(), res, top)
	return nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
