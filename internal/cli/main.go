package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "clipscout [url-or-video-id]",
		Short:        "Find highlight-clip candidates in a stream archive's chat and subtitles",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			return run(cmd, url)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("chat", "", "Local live-chat replay JSON (skips fetching chat)")
	root.Flags().String("subs", "", "Local subtitle JSON (skips fetching subtitles)")
	root.Flags().String("config", "clipscout.yaml", "Analysis settings file")
	root.Flags().String("out", "out", "Output directory")
	root.Flags().String("data", "data", "Download cache directory")
	root.Flags().Float64("min", 0, "Minimum clip duration in seconds (overrides config)")
	root.Flags().Float64("max", 0, "Maximum clip duration in seconds (overrides config)")
	root.Flags().Int("top", 0, "Number of candidates to display (0 = all)")
	root.Flags().Bool("force", false, "Refetch even when cached data exists")
	root.Flags().BoolP("verbose", "v", false, "Log pipeline progress")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
