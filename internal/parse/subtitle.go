package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yuikisato/clipscout/internal/types"
)

type rawSubtitleFile struct {
	Subtitles []rawSubtitle `json:"subtitles"`
}

type rawSubtitle struct {
	Start    *float64 `json:"start"`
	Duration *float64 `json:"duration"`
	Text     string   `json:"text"`
}

// Subtitles decodes a subtitle JSON payload into start-sorted records with
// End computed as Start+Duration. Entries missing timing fields or with a
// negative duration are skipped without failing the batch.
func Subtitles(r io.Reader) ([]types.SubtitleRecord, error) {
	var raw rawSubtitleFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode subtitle payload: %w", err)
	}

	var records []types.SubtitleRecord
	for _, sub := range raw.Subtitles {
		if sub.Start == nil || sub.Duration == nil || *sub.Duration < 0 {
			continue
		}
		records = append(records, types.SubtitleRecord{
			Start:    *sub.Start,
			Duration: *sub.Duration,
			End:      *sub.Start + *sub.Duration,
			Text:     sub.Text,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Start < records[j].Start
	})
	return records, nil
}

// json3 subtitle track shape, as written by yt-dlp for regular (non-chat)
// subtitle languages.
type rawTrackFile struct {
	Events []rawTrackEvent `json:"events"`
}

type rawTrackEvent struct {
	StartMs    int64         `json:"tStartMs"`
	DurationMs int64         `json:"dDurationMs"`
	Segs       []rawTrackSeg `json:"segs"`
}

type rawTrackSeg struct {
	UTF8 string `json:"utf8"`
}

// SubtitleTrack decodes a json3 subtitle track into start-sorted records.
// Events without text (window metadata, bare newlines) are skipped.
func SubtitleTrack(r io.Reader) ([]types.SubtitleRecord, error) {
	var raw rawTrackFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode subtitle track: %w", err)
	}

	var records []types.SubtitleRecord
	for _, ev := range raw.Events {
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" || ev.DurationMs < 0 {
			continue
		}
		start := float64(ev.StartMs) / 1000
		duration := float64(ev.DurationMs) / 1000
		records = append(records, types.SubtitleRecord{
			Start:    start,
			Duration: duration,
			End:      start + duration,
			Text:     text,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Start < records[j].Start
	})
	return records, nil
}
