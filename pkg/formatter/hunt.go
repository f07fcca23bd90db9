package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/report"
)

// PrintBanner prints the tool banner
func PrintBanner(w io.Writer) {
	content := strings.Join([]string{
		"🔍 OCI LoadBalancer-GhostHunter 🔍",
		"Hunt down those forgotten LBs!",
	}, "\n")
	fmt.Fprintln(w, bannerStyle.Render(content))
	fmt.Fprintln(w)
}

// PrintSectionHeader prints a boxed section title
func PrintSectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, bannerStyle.Render(title))
}

// PrintCompartmentScan prints the per load balancer lines for one scanned compartment
func PrintCompartmentScan(w io.Writer, compartment string, classic, network int, verdicts []models.GhostVerdict) {
	fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("🔄 Scanning compartment: %s", compartment)))

	if classic+network == 0 {
		fmt.Fprintln(w, InfoStyle.Render("   ℹ️ No load balancers found in this compartment"))
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("   📊 Found %d classic + %d network load balancer(s)", classic, network)))
	for _, v := range verdicts {
		fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("      🔍 Analyzing %s LB: %s", v.Type, v.Name)))
		if v.Failed() {
			fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf("         ❌ %s", v.ReasonsText())))
			continue
		}
		line := fmt.Sprintf("         %s - Score: %d", DisplayStatus(v.Status), v.Score)
		if v.IsSuspicious() {
			fmt.Fprintln(w, GhostStyle.Render(line))
		} else {
			fmt.Fprintln(w, SuccessStyle.Render(line))
		}
	}
	fmt.Fprintln(w)
}

// PrintHuntSummary prints the totals of a run
func PrintHuntSummary(w io.Writer, summary report.Summary) {
	fmt.Fprintln(w)
	PrintSectionHeader(w, "📊 HUNT SUMMARY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("📊 Total Load Balancers Scanned: %s", humanize.Comma(int64(summary.TotalScanned)))))
	fmt.Fprintln(w, GhostStyle.Render(fmt.Sprintf("👻 Potential Ghost Load Balancers: %s", humanize.Comma(int64(summary.Suspicious)))))
	if summary.Failed > 0 {
		fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf("❌ Failed Analyses: %d", summary.Failed)))
	}
	fmt.Fprintln(w)
}

// PrintGhostDetails prints one block per suspicious load balancer
func PrintGhostDetails(w io.Writer, ghosts []models.GhostVerdict, now time.Time) {
	if len(ghosts) == 0 {
		return
	}

	fmt.Fprintln(w, GhostStyle.Render("🔍 DETAILED GHOST ANALYSIS:"))
	fmt.Fprintln(w, HeaderStyle.Render(strings.Repeat(separator, bannerWidth)))

	for _, g := range ghosts {
		fmt.Fprintln(w, GhostStyle.Render(fmt.Sprintf("👻 %s (%s)", g.Name, DisplayStatus(g.Status))))
		fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("   📍 Location: %s / %s", g.Compartment, g.Type)))
		fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("   📊 Ghost Score: %d", g.Score)))
		fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf("   🔍 Issues: %s", g.ReasonsText())))
		fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("   🏷️ Shape: %s", g.Shape)))
		if g.TimeCreated != models.UnknownValue {
			fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf("   🕒 Created: %s", Age(g.TimeCreated, now))))
		}
		if g.Tags != "" {
			fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf("   🏷️ Tags: %s", g.Tags)))
		}
		fmt.Fprintln(w)
	}
}

// PrintStatusTiers prints every status tier with its score range
func PrintStatusTiers(w io.Writer) {
	tiers := []struct {
		status models.GhostStatus
		rng    string
	}{
		{models.StatusDefiniteGhost, fmt.Sprintf("score >= %d", models.ThresholdDefiniteGhost)},
		{models.StatusLikelyGhost, fmt.Sprintf("%d-%d", models.ThresholdLikelyGhost, models.ThresholdDefiniteGhost-1)},
		{models.StatusSuspicious, fmt.Sprintf("%d-%d", models.ThresholdSuspicious, models.ThresholdLikelyGhost-1)},
		{models.StatusReviewNeeded, fmt.Sprintf("%d-%d", models.ThresholdReviewNeeded, models.ThresholdSuspicious-1)},
		{models.StatusActive, fmt.Sprintf("score < %d", models.ThresholdReviewNeeded)},
		{models.StatusAnalysisFailed, "analysis error, score 0"},
	}

	fmt.Fprintln(w, "Ghost status tiers:")
	for _, t := range tiers {
		fmt.Fprintf(w, "  %s %s\n", PadString(DisplayStatus(t.status), 22), t.rng)
	}
	fmt.Fprintf(w, "\nLoad balancers scoring %d or more are reported as potential ghosts.\n", models.ThresholdSuspicious)
}

// PrintCSVExport prints the outcome of the CSV export
func PrintCSVExport(w io.Writer, path string, rows int, size int64) {
	if rows == 0 {
		fmt.Fprintln(w, SuccessStyle.Render("🎉 No suspicious load balancers found - no CSV export needed!"))
		return
	}
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("📄 Suspicious load balancers exported to: %s", path)))
	fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("📊 Exported %d suspicious load balancers (Ghost Score ≥ %d)", rows, models.ThresholdSuspicious)))
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("✅ CSV file created successfully (%s)", humanize.Bytes(uint64(size)))))
}

// PrintHTMLExport prints the outcome of the HTML report generation
func PrintHTMLExport(w io.Writer, path string, size int64) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("📄 HTML report generated: %s", path)))
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("✅ HTML report created successfully (%s)", humanize.Bytes(uint64(size)))))
	fmt.Fprintln(w, InfoStyle.Render("🌐 Open the HTML file in your browser to view the report"))
}
