package parse

import (
	"strings"
	"testing"
)

func TestSubtitles(t *testing.T) {
	payload := `{"subtitles": [
		{"start": 30, "duration": 5, "text": "second"},
		{"start": 10, "duration": 4.5, "text": "first"},
		{"duration": 3, "text": "missing start"},
		{"start": 40, "text": "missing duration"},
		{"start": 50, "duration": -1, "text": "negative"}
	]}`
	records, err := Subtitles(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("parse subtitles: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}
	if records[0].Start != 10 || records[0].End != 14.5 || records[0].Text != "first" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Start != 30 || records[1].End != 35 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestSubtitles_ZeroDurationKept(t *testing.T) {
	records, err := Subtitles(strings.NewReader(`{"subtitles": [{"start": 0, "duration": 0, "text": "x"}]}`))
	if err != nil {
		t.Fatalf("parse subtitles: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("zero duration is valid, got %+v", records)
	}
}

func TestSubtitleTrack(t *testing.T) {
	payload := `{"events": [
		{"tStartMs": 0, "dDurationMs": 0, "id": 1, "wpWinPosId": 2},
		{"tStartMs": 12500, "dDurationMs": 3000, "segs": [{"utf8": "こんにちは"}, {"utf8": "世界"}]},
		{"tStartMs": 16000, "dDurationMs": 2000, "segs": [{"utf8": "\n"}]},
		{"tStartMs": 5000, "dDurationMs": 1500, "segs": [{"utf8": "earlier"}]}
	]}`
	records, err := SubtitleTrack(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("parse track: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}
	if records[0].Start != 5 || records[0].Duration != 1.5 || records[0].Text != "earlier" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Start != 12.5 || records[1].End != 15.5 || records[1].Text != "こんにちは世界" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestSubtitleTrack_BadPayload(t *testing.T) {
	if _, err := SubtitleTrack(strings.NewReader("[]")); err == nil {
		t.Fatal("expected decode error")
	}
}
