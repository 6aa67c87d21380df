// Package ytdlp fetches live-chat replays and subtitle tracks by shelling
// out to yt-dlp, caching the downloaded payloads on disk.
package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/yuikisato/clipscout/internal/parse"
	"github.com/yuikisato/clipscout/internal/types"
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of a watch, short, or
// live URL. A bare ID passes through unchanged.
func ExtractVideoID(url string) (string, error) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	if bareVideoID.MatchString(url) {
		return url, nil
	}
	return "", fmt.Errorf("no video ID in %q", url)
}

// subtitle languages tried in order when fetching a track.
var subtitleLangs = []string{"ja", "en"}

type Adapter struct {
	bin     string
	dataDir string
	force   bool
	logf    func(format string, args ...any)
}

// New builds an adapter that stores downloads under dataDir. force refetches
// even when a cached payload exists. logf may be nil.
func New(binPath, dataDir string, force bool, logf func(format string, args ...any)) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Adapter{bin: binPath, dataDir: dataDir, force: force, logf: logf}
}

// FetchChat downloads the live-chat replay track. yt-dlp exposes it as a
// subtitle language and writes <id>.live_chat.json next to the output
// prefix; that file is renamed into the cache slot.
func (a *Adapter) FetchChat(ctx context.Context, videoID string) ([]types.CommentRecord, error) {
	cached := filepath.Join(a.dataDir, videoID+"_chat.json")
	if err := a.ensure(ctx, videoID, cached, "live_chat", videoID+".live_chat.json"); err != nil {
		return nil, err
	}
	f, err := os.Open(cached)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.Chat(f)
}

// FetchSubtitles downloads a subtitle track, trying languages in order.
func (a *Adapter) FetchSubtitles(ctx context.Context, videoID string) ([]types.SubtitleRecord, error) {
	cached := filepath.Join(a.dataDir, videoID+"_subtitle.json")

	var lastErr error
	for _, lang := range subtitleLangs {
		err := a.ensure(ctx, videoID, cached, lang, videoID+"."+lang+".json3")
		if err == nil {
			f, err := os.Open(cached)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return parse.SubtitleTrack(f)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no subtitle track for %s: %w", videoID, lastErr)
}

// ensure makes the cached payload exist, downloading and renaming the
// yt-dlp output when needed.
func (a *Adapter) ensure(ctx context.Context, videoID, cached, subLang, produced string) error {
	if !a.force {
		if _, err := os.Stat(cached); err == nil {
			a.logf("reusing cached payload: %s", cached)
			return nil
		}
	}
	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return err
	}

	a.logf("fetching %s track for %s", subLang, videoID)
	cmd := exec.CommandContext(ctx, a.bin,
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-lang", subLang,
		"--sub-format", "json3",
		"-o", filepath.Join(a.dataDir, videoID),
		"https://www.youtube.com/watch?v="+videoID,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("yt-dlp %s track: %w\n%s", subLang, err, string(b))
	}

	producedPath := filepath.Join(a.dataDir, produced)
	if _, err := os.Stat(producedPath); err != nil {
		return fmt.Errorf("yt-dlp produced no %s track for %s", subLang, videoID)
	}
	return os.Rename(producedPath, cached)
}
