package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"captionseg/internal/transcript"
)

func renderStatsTable(stats transcript.Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Segments in", stats.SegmentsIn},
		{"Segments out", stats.SegmentsOut},
		{"Words", stats.Words},
		{"Anchor ratio", fmt.Sprintf("%.2f", stats.AnchorRatio)},
		{"Low confidence", stats.LowConfidence},
		{"Width violations", stats.WidthViolations},
		{"CPS violations", stats.CPSViolations},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
