package ports

import (
	"context"

	"github.com/yuikisato/clipscout/internal/types"
)

// ChatSource delivers the comment stream for a video. Implementations own
// all network and file I/O; the analysis core never fetches anything itself.
type ChatSource interface {
	FetchChat(ctx context.Context, videoID string) ([]types.CommentRecord, error)
}

// SubtitleSource delivers the subtitle stream for a video.
type SubtitleSource interface {
	FetchSubtitles(ctx context.Context, videoID string) ([]types.SubtitleRecord, error)
}
