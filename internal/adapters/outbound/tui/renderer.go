package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pepcheck/pepcheck/internal/domain"
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
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	ruleTagStyle  = lipgloss.NewStyle().Foreground(accent)
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	locStyle      = lipgloss.NewStyle().Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 3)
)

// RenderPlain renders the batch in the machine-readable form consumed by
// pre-commit hooks and editors: one line per violation,
// <path>:<line>:[<col>:] [<rule>] <message>, then a summary line.
func RenderPlain(batch *domain.BatchReport) string {
	var b strings.Builder

	for _, report := range batch.Reports {
		if report.ReadError != "" {
			fmt.Fprintf(&b, "%s: cannot read: %s\n", report.Path, report.ReadError)
			continue
		}
		for _, v := range report.Violations {
			b.WriteString(v.String(report.Path))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "%d violation(s) in %d file(s)\n",
		batch.ViolationCount(), batch.FileCount())

	return b.String()
}

// RenderStyled renders the batch as a styled terminal report.
func RenderStyled(batch *domain.BatchReport) string {
	var b strings.Builder

	title := titleStyle.Render("pepcheck")
	subtitle := dimStyle.Render("style conformance")
	b.WriteString(headerBoxStyle.Render(title + "  " + subtitle))
	b.WriteString("\n\n")

	for _, report := range batch.Reports {
		renderReport(&b, report)
	}

	b.WriteString("  " + separatorLine + "\n")
	b.WriteString("  " + renderSummary(batch) + "\n")

	return b.String()
}

func renderReport(b *strings.Builder, report *domain.CheckReport) {
	switch {
	case report.ReadError != "":
		fmt.Fprintf(b, "  %s %s  %s\n", failStyle.Render("✗"),
			fileStyle.Render(report.Path),
			warnStyle.Render("cannot read: "+report.ReadError))
	case !report.Failed():
		fmt.Fprintf(b, "  %s %s\n", passStyle.Render("✓"),
			fileStyle.Render(report.Path))
	default:
		fmt.Fprintf(b, "  %s %s  %s\n", failStyle.Render("✗"),
			fileStyle.Render(report.Path),
			dimStyle.Render(fmt.Sprintf("(%d)", len(report.Violations))))
		for _, v := range report.Violations {
			loc := fmt.Sprintf("%d", v.Line)
			if v.Col > 0 {
				loc = fmt.Sprintf("%d:%d", v.Line, v.Col)
			}
			fmt.Fprintf(b, "      %s %s %s\n",
				locStyle.Render(loc),
				ruleTagStyle.Render("["+v.RuleCode+"]"),
				v.Message)
		}
	}
}

func renderSummary(batch *domain.BatchReport) string {
	n := batch.ViolationCount()
	text := fmt.Sprintf("%d violation(s) in %d file(s)", n, batch.FileCount())
	if n == 0 && !batch.HasReadErrors() {
		return passStyle.Render(text)
	}
	return failStyle.Render(text)
}
