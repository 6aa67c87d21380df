package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/yuikisato/clipscout/internal/parse"
	"github.com/yuikisato/clipscout/internal/types"
	"github.com/yuikisato/clipscout/internal/usecase"
)

func writeReport(path string, report usecase.Report) error {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

var csvHeader = []string{"start", "end", "start_formatted", "end_formatted", "reason", "score"}

func writeCandidatesCSV(path string, cands []types.Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(cands)+1)
	rows = append(rows, csvHeader)
	for _, c := range cands {
		rows = append(rows, []string{
			strconv.FormatFloat(c.Start, 'f', 1, 64),
			strconv.FormatFloat(c.End, 'f', 1, 64),
			parse.FormatTimestamp(c.Start),
			parse.FormatTimestamp(c.End),
			c.Reason,
			strconv.FormatFloat(c.Score, 'f', 2, 64),
		})
	}

	if err := csv.NewWriter(f).WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
