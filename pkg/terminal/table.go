package terminal

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Column describes one table column.
type Column struct {
	Header     string
	AlignRight bool
}

// RenderTable renders rows under the given columns as a rounded box table.
func (c Config) RenderTable(columns []Column, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	if c.NoColor {
		tw.Style().Color = table.ColorOptions{}
	} else {
		tw.Style().Color.Header = text.Colors{text.Bold}
	}

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))

	for i, col := range columns {
		header[i] = col.Header

		configs[i] = table.ColumnConfig{Number: i + 1}
		if col.AlignRight {
			configs[i].Align = text.AlignRight
			configs[i].AlignHeader = text.AlignRight
		}
	}

	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}

		tw.AppendRow(row)
	}

	return tw.Render()
}
