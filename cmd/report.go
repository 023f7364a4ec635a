package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/scpdump/core"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// renderReport formats the per-article outcomes as a table. Rounded box
// drawing is only used on a terminal.
func renderReport(report *core.Report, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.SetTitle(fmt.Sprintf("Series %d", report.Series))
	tw.AppendHeader(table.Row{"#", "Title", "Status", "Output"})
	for _, it := range report.Items {
		status, detail := "ok", it.Path
		if !it.OK() {
			status, detail = "failed", it.Err.Error()
		}
		tw.AppendRow(table.Row{fmt.Sprintf("%03d", it.Index), it.Title, status, detail})
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d ok", report.Succeeded()), fmt.Sprintf("%d failed", report.Failed())})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: 40},
		{Number: 4, WidthMax: 60},
	})
	return tw.Render()
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
