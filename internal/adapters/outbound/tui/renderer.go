package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rolelens/rolelens/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderStructure renders a structure report for terminal display.
func RenderStructure(report *domain.StructureReport) string {
	var b strings.Builder

	title := headerStyle.Render("rolelens")
	subtitle := dimStyle.Render("Role structure review")
	counts := fmt.Sprintf("%d / %d directories present",
		report.Summary.DirectoriesPresent, report.Summary.TotalExpected)
	countStyle := passStyle
	if report.Summary.IssueCount > 0 {
		countStyle = failStyle
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" +
		titleStyle.Render(report.RoleName) + "\n" + countStyle.Render(counts)))
	b.WriteString("\n\n")

	for _, entry := range domain.ExpectedDirs {
		status := report.Structure[entry.Name]
		if status.Exists {
			files := 0
			if status.FileCount != nil {
				files = *status.FileCount
			}
			b.WriteString(fmt.Sprintf("  %s %-16s %s\n",
				passStyle.Render("✓"), entry.Name,
				dimStyle.Render(fmt.Sprintf("%d files", files))))
		} else {
			b.WriteString(fmt.Sprintf("  %s %-16s %s\n",
				faintStyle.Render("·"), faintStyle.Render(entry.Name),
				faintStyle.Render(status.Description)))
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(report.Issues) > 0 {
		b.WriteString("  " + errorTagStyle.Render(fmt.Sprintf("%d issues", len(report.Issues))) + "\n")
		for _, issue := range report.Issues {
			b.WriteString("  " + failStyle.Render("✗ ") + issue.Message + "\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n\n")
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("  " + titleStyle.Render("Recommendations") + "\n")
		for _, rec := range report.Recommendations {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				warnStyle.Render("→"), dimStyle.Render("["+rec.Type+"]"), rec.Message))
		}
	}

	if report.Metadata != nil {
		b.WriteString("\n  " + titleStyle.Render("Galaxy metadata") + "\n")
		if report.Metadata.Author != "" {
			b.WriteString("  " + dimStyle.Render("author: ") + report.Metadata.Author + "\n")
		}
		if report.Metadata.License != "" {
			b.WriteString("  " + dimStyle.Render("license: ") + report.Metadata.License + "\n")
		}
		if report.Metadata.MinAnsibleVersion != "" {
			b.WriteString("  " + dimStyle.Render("min ansible: ") + report.Metadata.MinAnsibleVersion + "\n")
		}
	}

	return b.String()
}

// RenderLint renders a lint report for terminal display.
func RenderLint(report *domain.LintReport) string {
	var b strings.Builder

	title := headerStyle.Render("rolelens")
	subtitle := dimStyle.Render("ansible-lint")

	if !report.Success {
		b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + failStyle.Render("invocation failed")))
		b.WriteString("\n\n  " + failStyle.Render("✗ ") + report.Error + "\n")
		return b.String()
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + titleStyle.Render(report.Summary)))
	b.WriteString("\n\n")

	if count, ok := report.Findings.Count(); ok && count == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
	} else if report.Findings != nil && report.Findings.IsRaw {
		b.WriteString("  " + dimStyle.Render("raw linter output:") + "\n")
		for _, line := range strings.Split(strings.TrimRight(report.Findings.Raw, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	} else {
		for _, f := range findingLines(report.Findings) {
			b.WriteString("  " + warnStyle.Render("→ ") + f + "\n")
		}
	}

	if report.Stderr != "" {
		b.WriteString("\n  " + dimStyle.Render("stderr:") + "\n")
		for _, line := range strings.Split(strings.TrimRight(report.Stderr, "\n"), "\n") {
			b.WriteString("  " + faintStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

// findingLines flattens opaque finding records into single display lines.
// The linter's schema is unvalidated, so this only picks out well-known
// keys when they happen to exist.
func findingLines(f *domain.Findings) []string {
	seq, ok := f.Structured.([]any)
	if !ok {
		data := fmt.Sprintf("%v", f.Structured)
		return []string{data}
	}

	lines := make([]string, 0, len(seq))
	for _, item := range seq {
		record, ok := item.(map[string]any)
		if !ok {
			lines = append(lines, fmt.Sprintf("%v", item))
			continue
		}
		msg, _ := record["message"].(string)
		if msg == "" {
			msg = fmt.Sprintf("%v", record)
		}
		lines = append(lines, msg)
	}
	return lines
}

// RenderHistory renders past review summaries, oldest first.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No review history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Review history") + "\n\n")
	for _, e := range entries {
		issueStyle := passStyle
		if e.IssueCount > 0 {
			issueStyle = failStyle
		}
		commit := ""
		if e.CommitHash != "" {
			commit = faintStyle.Render(" @" + shortHash(e.CommitHash))
		}
		b.WriteString(fmt.Sprintf("  %s  %s%s  %s, %s\n",
			dimStyle.Render(e.Timestamp),
			e.RoleName,
			commit,
			issueStyle.Render(fmt.Sprintf("%d issues", e.IssueCount)),
			dimStyle.Render(fmt.Sprintf("%d recommendations", e.RecommendationCount)),
		))
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
