package provision

import (
	"prepare_bcdi_notebook/util/tw"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// Summarize renders table of <results> with <w>
func (r repo) Summarize(w tw.Writer, results []Result) {
	if len(results) == 0 {
		return
	}
	w.AppendHeader(table.Row{"Destination", "Target", "Result", "Reason"})
	for _, res := range results {
		reason := lo.TernaryF(res.Err == nil, func() string { return "" }, func() string { return res.Err.Error() })
		w.AppendRow(table.Row{res.Arg, res.Target, colorize(res.Status), reason})
	}
	counts := lo.CountValuesBy(results, func(res Result) Status { return res.Status })
	w.AppendFooter(table.Row{"Total", len(results), colorize(Copied), counts[Copied]})
	w.Render()
}

// colorize returns <status> colored according to it's value
func colorize(status Status) string {
	switch status {
	case Copied:
		return color.GreenString(string(status))
	case Skipped:
		return color.YellowString(string(status))
	default:
		return color.RedString(string(status))
	}
}
