package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	output "github.com/ns-engineering/contentbuild/internal/adapters/driven/output/file"
	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

// Summary palette.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#A6E3A1") // Green
	colorWarning = lipgloss.Color("#F9E2AF") // Yellow
	colorMuted   = lipgloss.Color("#6C7086") // Medium gray
)

// summaryStyles are bound to one writer so colour is only emitted for
// terminals.
type summaryStyles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

func newSummaryStyles(w io.Writer) summaryStyles {
	r := lipgloss.NewRenderer(w)
	return summaryStyles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		label:   r.NewStyle().Width(12),
		warning: r.NewStyle().Foreground(colorWarning),
		success: r.NewStyle().Foreground(colorSuccess),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// printReport writes a per-domain summary followed by every warning.
func printReport(w io.Writer, report *domain.BuildReport) {
	s := newSummaryStyles(w)

	title := "Build summary"
	if report.DryRun {
		title = "Validation summary"
	}
	fmt.Fprintln(w, s.title.Render(title))

	for _, d := range report.Domains {
		line := fmt.Sprintf("%d entities", d.Entities)
		if d.Featured > 0 {
			line += fmt.Sprintf(", %d featured", d.Featured)
		}
		if !report.DryRun {
			line += fmt.Sprintf(", %d media files copied", d.CopiedMedia)
		}
		if d.MissingMedia > 0 {
			line += ", " + s.warning.Render(fmt.Sprintf("%d missing media", d.MissingMedia))
		}
		fmt.Fprintf(w, "  %s%s\n", s.label.Render(string(d.Domain)), line)

		for _, key := range sortedKeys(d.Counts) {
			fmt.Fprintf(w, "  %s%s\n", s.label.Render(""), s.muted.Render(fmt.Sprintf("%s: %d", key, d.Counts[key])))
		}
	}

	if n := report.WarningCount(); n > 0 {
		fmt.Fprintln(w, s.warning.Render(fmt.Sprintf("%d warnings", n)))
		for _, d := range report.Domains {
			for _, warning := range d.Warnings {
				fmt.Fprintf(w, "  - %s\n", warning)
			}
		}
	} else {
		fmt.Fprintln(w, s.success.Render("No warnings"))
	}

	fmt.Fprintln(w, s.muted.Render(fmt.Sprintf("Finished in %s (run %s)", report.Duration().Round(time.Millisecond), report.RunID)))
}

// writeReport stores the report as JSON at path.
func writeReport(ctx context.Context, path string, report *domain.BuildReport) error {
	return output.NewWriter(filepath.Dir(path)).Write(ctx, domain.Artifact{
		Name: filepath.Base(path),
		Body: report,
	})
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
