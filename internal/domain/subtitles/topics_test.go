package subtitles

import (
	"testing"

	"github.com/yuikisato/clipscout/internal/types"
)

func TestDetectTopicChanges_Defaults(t *testing.T) {
	subs := []types.SubtitleRecord{
		cue(0, 4, "こんにちは"),
		cue(5, 4, "これからゲームを始めます"),
		cue(10, 4, "次はボス戦です"),
		cue(15, 4, "すごい！"),
		cue(25, 4, "それでは終わります"),
	}
	changes, err := DetectTopicChanges(subs, nil)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %+v", changes)
	}
	if changes[0].Time != 5 || changes[0].Keyword != "これから" {
		t.Fatalf("unexpected first change: %+v", changes[0])
	}
	if changes[1].Time != 10 || changes[1].Keyword != "次は" {
		t.Fatalf("unexpected second change: %+v", changes[1])
	}
	if changes[2].Time != 25 || changes[2].Keyword != "それでは" {
		t.Fatalf("unexpected third change: %+v", changes[2])
	}
}

func TestDetectTopicChanges_OneChangePerSubtitle(t *testing.T) {
	// Both markers appear; keyword priority order decides which one is
	// reported, and only one change is emitted.
	subs := []types.SubtitleRecord{cue(0, 4, "それでは次はボス戦")}
	changes, err := DetectTopicChanges(subs, nil)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected exactly one change, got %+v", changes)
	}
	if changes[0].Keyword != "次は" {
		t.Fatalf("expected first-priority keyword, got %+v", changes[0])
	}
}

func TestDetectTopicChanges_CustomKeywords(t *testing.T) {
	subs := []types.SubtitleRecord{
		cue(0, 4, "moving on to the next part"),
		cue(5, 4, "nothing here"),
	}
	changes, err := DetectTopicChanges(subs, []string{`moving on`})
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(changes) != 1 || changes[0].Time != 0 {
		t.Fatalf("unexpected changes: %+v", changes)
	}
}

func TestDetectTopicChanges_BadPattern(t *testing.T) {
	if _, err := DetectTopicChanges(nil, []string{`[`}); err == nil {
		t.Fatal("unparsable pattern must be rejected")
	}
}

func TestDetectTopicChanges_Empty(t *testing.T) {
	changes, err := DetectTopicChanges(nil, nil)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("expected no changes, got %+v", changes)
	}
}
