// Package localfile serves already-downloaded archive payloads from disk.
package localfile

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/yuikisato/clipscout/internal/parse"
	"github.com/yuikisato/clipscout/internal/types"
)

// ChatFile reads a saved live-chat replay JSON file.
type ChatFile struct {
	Path string
}

func (c ChatFile) FetchChat(_ context.Context, _ string) ([]types.CommentRecord, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.Chat(f)
}

// SubtitleFile reads a saved subtitle JSON file, accepting either the
// archive shape ({"subtitles": [...]}) or a raw json3 track.
type SubtitleFile struct {
	Path string
}

func (s SubtitleFile) FetchSubtitles(_ context.Context, _ string) ([]types.SubtitleRecord, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	records, archiveErr := parse.Subtitles(bytes.NewReader(b))
	if archiveErr == nil && len(records) > 0 {
		return records, nil
	}

	records, trackErr := parse.SubtitleTrack(bytes.NewReader(b))
	if trackErr == nil && len(records) > 0 {
		return records, nil
	}

	if archiveErr != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, archiveErr)
	}
	// Both decoders accepted the payload but found no cues.
	return nil, nil
}
