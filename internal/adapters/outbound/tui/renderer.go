package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/locqa/locqa/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
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
			Width(68)

	dimStyle         = lipgloss.NewStyle().Foreground(dim)
	faintStyle       = lipgloss.NewStyle().Foreground(faint)
	passStyle        = lipgloss.NewStyle().Foreground(success)
	failStyle        = lipgloss.NewStyle().Foreground(danger)
	blockerTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle     = lipgloss.NewStyle().Foreground(warning).Bold(true)
	keyStyle         = lipgloss.NewStyle().Foreground(dim)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	verdictPassStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	verdictFailStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	separatorLine    = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a QA report for terminal output. Findings keep
// batch order.
func RenderReport(r *domain.Report, records int) string {
	var b strings.Builder

	title := headerStyle.Render("locqa")
	subtitle := dimStyle.Render(fmt.Sprintf("Localization QA · %d records", records))
	var verdict string
	if r.Summary.Pass {
		verdict = verdictPassStyle.Render("PASS")
	} else {
		verdict = verdictFailStyle.Render(fmt.Sprintf("FAIL  %d issues", r.Summary.Issues))
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	counts := r.CountByCategory()
	for _, cat := range domain.ValidCategories {
		renderCategoryLine(&b, cat, counts[cat])
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if len(r.Checks) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if n := r.Blockers(); n > 0 {
		b.WriteString(blockerTagStyle.Render(plural(n, "blocker")))
		b.WriteString("  ")
	}
	if n := r.Warnings(); n > 0 {
		b.WriteString(warnTagStyle.Render(plural(n, "warning")))
	}
	b.WriteString("\n\n")

	for _, f := range r.Checks {
		renderFinding(&b, f)
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategoryLine(b *strings.Builder, cat domain.Category, n int) {
	name := catNameStyle.Render(padRight(string(cat), 16))
	var icon, count string
	if n == 0 {
		icon = passStyle.Render("●")
		count = dimStyle.Render("clean")
	} else {
		icon = failStyle.Render("●")
		count = failStyle.Render(plural(n, "issue"))
	}
	fmt.Fprintf(b, "  %s %s %s\n", icon, name, count)
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	fmt.Fprintf(b, "    %s %s %s\n",
		severityTag(f.Severity),
		keyStyle.Render(f.Key),
		faintStyle.Render(string(f.Category)),
	)
	fmt.Fprintf(b, "            %s\n", dimStyle.Render(f.Message))
}

func severityTag(s domain.Severity) string {
	if s.Fatal() {
		return blockerTagStyle.Render("blocker")
	}
	return warnTagStyle.Render("warn   ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		if e.Dirty {
			hash += "*"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		var verdict string
		if e.Pass {
			verdict = passStyle.Render("pass")
		} else {
			verdict = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			verdict,
			fmt.Sprintf("%d records", e.Records),
			dimStyle.Render(fmt.Sprintf("%d blockers, %d warnings", e.Blockers, e.Warnings)),
		)

		if i > 0 {
			diff := e.Issues - entries[i-1].Issues
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
