package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/yuikisato/clipscout/internal/parse"
	"github.com/yuikisato/clipscout/internal/pipeline"
)

func render(w io.Writer, res pipeline.Result, top int) {
	rep := res.Report

	if rep.CommentStats.TotalComments > 0 {
		fmt.Fprintf(w, "Comments: %d from %d commenters over %s (%.1f/min)\n",
			rep.CommentStats.TotalComments,
			rep.CommentStats.UniqueCommenters,
			parse.FormatTimestamp(rep.CommentStats.DurationSeconds),
			rep.CommentStats.CommentsPerMinute,
		)
	}
	if rep.SubtitleStats.TotalSubtitles > 0 {
		fmt.Fprintf(w, "Subtitles: %d cues over %s, %d segments, %d topic changes\n",
			rep.SubtitleStats.TotalSubtitles,
			parse.FormatTimestamp(rep.SubtitleStats.TotalDuration),
			len(rep.Segments),
			len(rep.TopicChanges),
		)
	}

	if len(rep.Peaks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderPeaks(res))
	}

	fmt.Fprintln(w)
	if len(rep.Candidates) == 0 {
		fmt.Fprintln(w, "No highlight candidates found.")
		return
	}
	fmt.Fprintln(w, renderCandidates(res, top))
	fmt.Fprintf(w, "\nReport: %s\nCSV:    %s\n", res.ReportPath, res.CandidatesCSV)
}

func renderCandidates(res pipeline.Result, top int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Highlight candidates")
	tw.AppendHeader(table.Row{"#", "Start", "End", "Length", "Score", "Reason"})

	cands := res.Report.Candidates
	if top > 0 && len(cands) > top {
		cands = cands[:top]
	}
	for i, c := range cands {
		tw.AppendRow(table.Row{
			i + 1,
			parse.FormatTimestamp(c.Start),
			parse.FormatTimestamp(c.End),
			fmt.Sprintf("%.0fs", c.Duration()),
			fmt.Sprintf("%.2f", c.Score),
			c.Reason,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderPeaks(res pipeline.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Comment peaks")
	tw.AppendHeader(table.Row{"Time", "Comments", "Rate/s"})
	for _, p := range res.Report.Peaks {
		tw.AppendRow(table.Row{
			parse.FormatTimestamp(p.Start),
			p.Count,
			fmt.Sprintf("%.1f", p.Rate),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}
