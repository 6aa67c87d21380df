package subtitles

import (
	"github.com/yuikisato/clipscout/internal/textmatch"
	"github.com/yuikisato/clipscout/internal/types"
)

// DefaultTopicMarkers are discourse-transition phrases that typically open a
// new topic in Japanese stream commentary ("next is", "well then",
// "continuing", "now", "from here", "from now", "first", "finally").
var DefaultTopicMarkers = []string{
	"次は",
	"それでは",
	"続いて",
	"さて",
	"ここから",
	"これから",
	"まず",
	"最後に",
}

// DetectTopicChanges flags subtitles containing a topic-marker keyword.
// Keywords are tried in order and the first match wins, so each subtitle
// yields at most one change even when several markers appear in it. A nil
// keyword list means DefaultTopicMarkers.
func DetectTopicChanges(subs []types.SubtitleRecord, keywords []string) ([]types.TopicChange, error) {
	if keywords == nil {
		keywords = DefaultTopicMarkers
	}
	matchers, err := textmatch.CompileSet(keywords, true)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}

	var changes []types.TopicChange
	for _, sub := range SortByStart(subs) {
		for _, m := range matchers {
			if m.Matches(sub.Text) {
				changes = append(changes, types.TopicChange{
					Time:    sub.Start,
					Keyword: m.Keyword(),
					Text:    sub.Text,
				})
				break
			}
		}
	}
	return changes, nil
}
