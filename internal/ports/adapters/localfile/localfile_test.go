package localfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestChatFile(t *testing.T) {
	path := writeFile(t, "chat.json", `{"events": [{"replayChatItemAction": {"actions": [
		{"addChatItemAction": {"item": {"liveChatTextMessageRenderer": {
			"timestampUsec": "5000000",
			"authorName": {"simpleText": "alice"},
			"message": {"runs": [{"text": "hi"}]}
		}}}}
	]}}]}`)
	records, err := ChatFile{Path: path}.FetchChat(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("fetch chat: %v", err)
	}
	if len(records) != 1 || records[0].Timestamp != 5 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestChatFile_Missing(t *testing.T) {
	c := ChatFile{Path: filepath.Join(t.TempDir(), "nope.json")}
	if _, err := c.FetchChat(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSubtitleFile_ArchiveShape(t *testing.T) {
	path := writeFile(t, "subs.json", `{"subtitles": [{"start": 10, "duration": 5, "text": "hello"}]}`)
	records, err := SubtitleFile{Path: path}.FetchSubtitles(context.Background(), "")
	if err != nil {
		t.Fatalf("fetch subtitles: %v", err)
	}
	if len(records) != 1 || records[0].End != 15 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestSubtitleFile_TrackShape(t *testing.T) {
	path := writeFile(t, "subs.json3", `{"events": [{"tStartMs": 10000, "dDurationMs": 5000, "segs": [{"utf8": "hello"}]}]}`)
	records, err := SubtitleFile{Path: path}.FetchSubtitles(context.Background(), "")
	if err != nil {
		t.Fatalf("fetch subtitles: %v", err)
	}
	if len(records) != 1 || records[0].Start != 10 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestSubtitleFile_BadPayload(t *testing.T) {
	path := writeFile(t, "subs.json", "{bad json")
	if _, err := (SubtitleFile{Path: path}).FetchSubtitles(context.Background(), ""); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSubtitleFile_EmptyCues(t *testing.T) {
	path := writeFile(t, "subs.json", `{"subtitles": []}`)
	records, err := SubtitleFile{Path: path}.FetchSubtitles(context.Background(), "")
	if err != nil {
		t.Fatalf("empty cue list must not error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}
