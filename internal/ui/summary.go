package ui

import (
	"fmt"
	"strings"

	"github.com/imamik/cfpages-prune/internal/prune"
)

// RenderSummary produces the end-of-run summary. With styled set the output
// is colored with lipgloss; otherwise it is plain text.
func RenderSummary(report *prune.Report, styled bool) string {
	s := newStyles(styled)
	var b strings.Builder

	title := fmt.Sprintf("  cfpages-prune: %s", report.ProjectName)
	if report.DryRun {
		title += " (dry run)"
	}
	b.WriteString("\n")
	b.WriteString(s.title.Render(title))
	b.WriteString("\n")
	b.WriteString(s.dim.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "    Live deployment:  %s\n", report.CanonicalID)
	fmt.Fprintf(&b, "    Listed:           %d\n", report.Listed)

	if report.DryRun {
		fmt.Fprintf(&b, "    Would delete:     %d\n", len(report.Planned))
	} else {
		fmt.Fprintf(&b, "    Deleted:          %s\n", s.ok.Render(fmt.Sprint(len(report.Deleted))))
		failed := fmt.Sprint(len(report.Failed))
		if len(report.Failed) > 0 {
			failed = s.failed.Render(failed)
		}
		fmt.Fprintf(&b, "    Failed:           %s\n", failed)
	}

	if len(report.Planned) > 0 {
		b.WriteString("\n")
		b.WriteString(s.section.Render("  Would delete"))
		b.WriteString("\n")
		for _, id := range report.Planned {
			fmt.Fprintf(&b, "    %s  %s\n", s.dim.Render(planMark), id)
		}
	}

	if len(report.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString(s.section.Render("  Failed deletions"))
		b.WriteString("\n")
		for _, f := range report.Failed {
			fmt.Fprintf(&b, "    %s  %-36s %s\n", s.failed.Render(crossMark), f.ID, s.dim.Render(f.Err.Error()))
		}
	}

	b.WriteString("\n")
	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "  %s  kept live deployment %s\n", s.dim.Render(skipMark), report.CanonicalID)
	}
	switch {
	case report.DryRun:
		b.WriteString(s.warning.Render("  Dry run: no deployments were deleted."))
	case len(report.Failed) > 0:
		b.WriteString(s.warning.Render(fmt.Sprintf("  %d deployment(s) could not be deleted; rerun to try again.", len(report.Failed))))
	default:
		b.WriteString(s.ok.Render(fmt.Sprintf("  %s All non-production deployments removed.", checkMark)))
	}
	b.WriteString("\n")

	return b.String()
}
