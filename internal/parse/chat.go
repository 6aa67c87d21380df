// Package parse decodes raw archive payloads into the record types the
// analyzers consume. Individual malformed entries are skipped; only an
// undecodable payload is an error.
package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yuikisato/clipscout/internal/types"
)

// json3 live-chat replay shape, trimmed to the fields we read. Everything
// else in the payload is ignored.
type rawChatFile struct {
	Events []rawChatEvent `json:"events"`
}

type rawChatEvent struct {
	ReplayChatItemAction *rawReplayAction `json:"replayChatItemAction"`
}

type rawReplayAction struct {
	Actions []rawChatAction `json:"actions"`
}

type rawChatAction struct {
	AddChatItemAction *rawAddChatItem `json:"addChatItemAction"`
}

type rawAddChatItem struct {
	Item rawChatItem `json:"item"`
}

type rawChatItem struct {
	TextMessage *rawTextMessage `json:"liveChatTextMessageRenderer"`
}

type rawTextMessage struct {
	TimestampUsec string        `json:"timestampUsec"`
	AuthorName    rawSimpleText `json:"authorName"`
	Message       rawRuns       `json:"message"`
}

type rawSimpleText struct {
	SimpleText string `json:"simpleText"`
}

type rawRuns struct {
	Runs []rawRun `json:"runs"`
}

type rawRun struct {
	Text string `json:"text"`
}

// Chat decodes a json3 live-chat replay file into time-sorted comment
// records. Events that are not text messages, or that carry an unparseable
// timestamp, are skipped without failing the batch.
func Chat(r io.Reader) ([]types.CommentRecord, error) {
	var raw rawChatFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode chat payload: %w", err)
	}

	var records []types.CommentRecord
	for _, event := range raw.Events {
		if event.ReplayChatItemAction == nil {
			continue
		}
		for _, action := range event.ReplayChatItemAction.Actions {
			rec, ok := commentFromAction(action)
			if !ok {
				continue
			}
			records = append(records, rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

func commentFromAction(action rawChatAction) (types.CommentRecord, bool) {
	if action.AddChatItemAction == nil {
		return types.CommentRecord{}, false
	}
	msg := action.AddChatItemAction.Item.TextMessage
	if msg == nil {
		return types.CommentRecord{}, false
	}

	usec, err := strconv.ParseInt(msg.TimestampUsec, 10, 64)
	if err != nil {
		return types.CommentRecord{}, false
	}

	author := msg.AuthorName.SimpleText
	if author == "" {
		author = "Unknown"
	}

	var sb strings.Builder
	for _, run := range msg.Message.Runs {
		sb.WriteString(run.Text)
	}

	return types.CommentRecord{
		Timestamp: float64(usec/1000) / 1000,
		Author:    author,
		Text:      sb.String(),
	}, true
}
