package comments

import (
	"sort"
	"unicode/utf8"

	"github.com/yuikisato/clipscout/internal/types"
)

// Statistics summarizes a comment stream for display.
type Statistics struct {
	TotalComments     int     `json:"total_comments"`
	UniqueCommenters  int     `json:"unique_commenters"`
	AvgCommentLength  float64 `json:"avg_comment_length"`
	DurationSeconds   float64 `json:"duration_seconds"`
	CommentsPerMinute float64 `json:"comments_per_minute"`
}

// Stats computes stream-level statistics. An empty stream yields zeroes.
func Stats(records []types.CommentRecord) Statistics {
	if len(records) == 0 {
		return Statistics{}
	}

	authors := make(map[string]struct{}, len(records))
	totalLen := 0
	for _, r := range records {
		authors[r.Author] = struct{}{}
		totalLen += utf8.RuneCountInString(r.Text)
	}

	minT, maxT := timeRange(records)
	duration := maxT - minT

	s := Statistics{
		TotalComments:    len(records),
		UniqueCommenters: len(authors),
		AvgCommentLength: float64(totalLen) / float64(len(records)),
		DurationSeconds:  duration,
	}
	if duration > 0 {
		s.CommentsPerMinute = float64(len(records)) / (duration / 60)
	}
	return s
}

// CommenterCount is one row in the top-commenter ranking.
type CommenterCount struct {
	Author string `json:"author"`
	Count  int    `json:"comment_count"`
}

// TopCommenters ranks authors by comment count, descending, ties broken by
// author name so the order is deterministic. At most n rows are returned.
func TopCommenters(records []types.CommentRecord, n int) []CommenterCount {
	if len(records) == 0 || n <= 0 {
		return nil
	}

	byAuthor := make(map[string]int)
	for _, r := range records {
		byAuthor[r.Author]++
	}

	ranked := make([]CommenterCount, 0, len(byAuthor))
	for author, count := range byAuthor {
		ranked = append(ranked, CommenterCount{Author: author, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Author < ranked[j].Author
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
