package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/locqa/locqa/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderCheckers lists the checker registry in evaluation order followed by
// the severity policy. Skipped categories are shown but marked.
func RenderCheckers(active []domain.Category, policy []domain.Classification) string {
	var b strings.Builder

	isActive := make(map[domain.Category]bool, len(active))
	for _, c := range active {
		isActive[c] = true
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render("Checkers"),
		dimStyle.Render(fmt.Sprintf("(%d active)", len(active))),
	)
	for i, cat := range domain.ValidCategories {
		if isActive[cat] {
			fmt.Fprintf(&b, "    %s %d. %s\n", passStyle.Render("●"), i+1, cat)
		} else {
			fmt.Fprintf(&b, "    %s %d. %s  %s\n", faintStyle.Render("○"), i+1, faintStyle.Render(string(cat)), faintStyle.Render("skipped"))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", sectionHeaderStyle.Render("Severity policy"))
	for _, cl := range policy {
		fmt.Fprintf(&b, "    %s %s %s\n",
			severityTag(cl.Severity),
			padRight(string(cl.Condition), 24),
			dimStyle.Render(string(cl.Category)),
		)
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Skip categories with --skip or skip.categories in .locqa.yaml."))
	b.WriteString("\n")

	return b.String()
}
