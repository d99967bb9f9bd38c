package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"listone/internal/channels"
	"listone/internal/lineup"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, footer []string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(footer, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:           i + 1,
			Align:            align,
			AlignHeader:      text.AlignLeft,
			AlignFooter:      align,
			WidthMax:         60,
			WidthMaxEnforcer: text.WrapSoft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func toRow(values []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(values) {
			r[i] = values[i]
		} else {
			r[i] = ""
		}
	}
	return r
}

// renderCategoryTable lists every category in output order with its count.
func renderCategoryTable(l lineup.Lineup) string {
	categories := channels.Order()
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			c.String(),
			c.Label(),
			strconv.Itoa(l.Stats.ByCategory[c]),
		})
	}
	footer := []string{
		"TOTAL",
		"duplicates dropped: " + strconv.Itoa(l.Stats.Duplicates),
		strconv.Itoa(l.Stats.Kept),
	}
	return renderTable(
		[]string{"Category", "Label", "Channels"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
		footer,
	)
}

func renderEntryTable(entries []lineup.Entry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), e.DisplayName, e.Locator})
	}
	return renderTable(
		[]string{"#", "Name", "Locator"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
		nil,
	)
}

func renderDuplicateTable(dups []lineup.Duplicate) string {
	rows := make([][]string, 0, len(dups))
	for _, d := range dups {
		rows = append(rows, []string{d.Key, d.Dropped.DisplayName, d.Kept.DisplayName})
	}
	return renderTable(
		[]string{"Key", "Dropped", "Kept"},
		rows,
		nil,
		nil,
	)
}
