package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/dfr-tools/dfrgram/pkg/terminal"
)

// Text layout.
const (
	shareBarWidth = 20
	maxWordWidth  = 32
	yamlIndent    = 2
)

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(r)
	if err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

// WriteYAML writes r as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(r)
	if err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return enc.Close()
}

// WriteText writes r as a terminal table followed by a stage summary.
func WriteText(w io.Writer, r Report, cfg terminal.Config) error {
	var sb strings.Builder

	right := fmt.Sprintf("%d words", len(r.Entries))
	sb.WriteString(terminal.DrawHeader(r.Title, right, cfg.Width))
	sb.WriteString("\n")

	maxCount := 0
	if len(r.Entries) > 0 {
		maxCount = r.Entries[0].Count
	}

	rows := make([][]string, 0, len(r.Entries))

	for i, e := range r.Entries {
		share := 0.0
		if maxCount > 0 {
			share = float64(e.Count) / float64(maxCount)
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			terminal.TruncateWithEllipsis(e.Word, maxWordWidth),
			humanize.Comma(int64(e.Count)),
			terminal.DrawProgressBar(share, shareBarWidth),
		})
	}

	sb.WriteString(cfg.RenderTable([]terminal.Column{
		{Header: "#", AlignRight: true},
		{Header: "Word"},
		{Header: "Count", AlignRight: true},
		{Header: "Share"},
	}, rows))
	sb.WriteString("\n")

	if len(r.Stages) > 0 {
		sb.WriteString(terminal.DrawSeparator(cfg.Width))
		sb.WriteString("\n")
		sb.WriteString(stageSummary(r, cfg))
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}

func stageSummary(r Report, cfg terminal.Config) string {
	rows := make([][]string, 0, len(r.Stages))

	for _, st := range r.Stages {
		kept := 1.0
		if st.RowsIn > 0 {
			kept = float64(st.RowsOut) / float64(st.RowsIn)
		}

		dropped := "-" + humanize.Comma(int64(st.Dropped()))

		rows = append(rows, []string{
			st.Stage,
			humanize.Comma(int64(st.RowsIn)),
			humanize.Comma(int64(st.RowsOut)),
			cfg.Colorize(dropped, terminal.ColorForRetention(kept)),
		})
	}

	return cfg.RenderTable([]terminal.Column{
		{Header: "Stage"},
		{Header: "Rows in", AlignRight: true},
		{Header: "Rows out", AlignRight: true},
		{Header: "Dropped", AlignRight: true},
	}, rows) + "\n"
}
