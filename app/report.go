package app

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// BuildReportMarkdown composes a human-readable insight report for a
// dashboard view.
func BuildReportMarkdown(view *DashboardView) string {
	var b strings.Builder

	b.WriteString("# Screen Time Insight Report\n\n")
	fmt.Fprintf(&b, "Snapshot `%s`, %d of %d children selected.\n\n", view.SnapshotID, view.Summary.Count, view.TotalRecords)

	b.WriteString("## Key Metrics\n\n")
	if !view.Summary.HasData {
		b.WriteString("No data matches the current filters.\n\n")
	} else {
		fmt.Fprintf(&b, "- Average daily screen time: **%.2f hrs**\n", view.Summary.MeanScreenTime)
		fmt.Fprintf(&b, "- Children reporting health issues: **%.1f%%**\n", view.Summary.HealthIssuesPct)
		fmt.Fprintf(&b, "- Average sleep: **%.1f hrs**\n", view.Summary.MeanSleepHours)
		fmt.Fprintf(&b, "- Average outdoor activity: **%.1f hrs**\n", view.Summary.MeanOutdoorActivity)
		fmt.Fprintf(&b, "- High or very high risk: **%.1f%%**\n\n", view.Summary.ElevatedRiskPct)
	}

	if view.HealthSubgroup.HasData {
		b.WriteString("## Children With Reported Health Issues\n\n")
		fmt.Fprintf(&b, "- Count: **%d**\n", view.HealthSubgroup.Count)
		fmt.Fprintf(&b, "- Average screen time: **%.2f hrs**\n", view.HealthSubgroup.MeanScreenTime)
		fmt.Fprintf(&b, "- Average sleep: **%.1f hrs**\n\n", view.HealthSubgroup.MeanSleepHours)
	}

	if view.SleepTrend.HasData {
		b.WriteString("## Sleep vs Screen Time\n\n")
		fmt.Fprintf(&b, "Fitted trend: sleep changes by **%.2f hrs** per additional screen hour (intercept %.2f hrs).\n\n",
			view.SleepTrend.Slope, view.SleepTrend.Intercept)
	}

	b.WriteString("## Recommendations\n\n")
	if len(view.Recommendations) == 0 {
		b.WriteString("No advisories triggered for the current selection.\n")
	} else {
		for _, rec := range view.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}

// RenderReportHTML renders the markdown report to an HTML fragment for
// the dashboard report view.
func RenderReportHTML(view *DashboardView) []byte {
	md := BuildReportMarkdown(view)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
