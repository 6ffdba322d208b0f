package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/realitycheck/realitycheck/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
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

	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	faintStyle     = lipgloss.NewStyle().Foreground(faint)
	passStyle      = lipgloss.NewStyle().Foreground(success)
	highTagStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	mediumTagStyle = lipgloss.NewStyle().Foreground(warning).Bold(true)
	lowTagStyle    = lipgloss.NewStyle().Foreground(info)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine  = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats an analysis report for the terminal.
func RenderReport(report *domain.Report, cfg domain.AnalyzerConfig) string {
	var b strings.Builder

	// ── Header ──
	verdict := domain.VerdictFor(report.Score, cfg)
	color := verdictColor(cfg.TierFor(report.Score))
	title := headerStyle.Render(report.Metadata.Platform)
	subtitle := dimStyle.Render(report.Metadata.Filename)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(fmt.Sprintf("%d / 100", report.Score))
	verdictStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(verdict)
	confidence := dimStyle.Render(fmt.Sprintf("confidence %d%%", report.Confidence))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" +
		scoreStyled + "  " + verdictStyled + "\n" + confidence))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n\n", labelStyle.Render(padRight("manipulation", 14)), coloredBar(report.Score, 40, color))

	// ── Metadata ──
	b.WriteString("  " + titleStyle.Render("Metadata") + "\n\n")
	renderField(&b, "format", report.Metadata.Format)
	renderField(&b, "size", report.Metadata.Filesize)
	renderField(&b, "dimensions", report.Metadata.Dimensions)
	renderField(&b, "duration", report.Metadata.Duration)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Anomalies ──
	if len(report.Anomalies) > 0 {
		high, medium, low := countSeverities(report.Anomalies)
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Anomalies"))
		b.WriteString("  ")
		if high > 0 {
			b.WriteString(highTagStyle.Render(fmt.Sprintf("%d high", high)))
			b.WriteString("  ")
		}
		if medium > 0 {
			b.WriteString(mediumTagStyle.Render(fmt.Sprintf("%d medium", medium)))
			b.WriteString("  ")
		}
		if low > 0 {
			b.WriteString(lowTagStyle.Render(fmt.Sprintf("%d low", low)))
		}
		b.WriteString("\n\n")

		for _, a := range report.Anomalies {
			renderAnomaly(&b, a)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No anomalies found.") + "\n")
	}

	// ── Technical details ──
	if !report.TechnicalDetails.Empty() {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Technical Details") + "\n")
		renderSection(&b, "Inconsistencies", report.TechnicalDetails.Inconsistencies)
		renderSection(&b, "Artifacts", report.TechnicalDetails.Artifacts)
		renderSection(&b, "Manipulation Traces", report.TechnicalDetails.ManipulationTraces)
	}

	b.WriteString("\n")
	return b.String()
}

// RenderProgress formats one progress event as a single status line.
func RenderProgress(event domain.ProgressEvent) string {
	return fmt.Sprintf("  %s %s %s",
		coloredBar(event.Percentage, 30, accent),
		dimStyle.Render(fmt.Sprintf("%3d%%", event.Percentage)),
		event.Status,
	)
}

// RenderPhases lists the phase sequence for a media kind.
func RenderPhases(kind domain.MediaKind, phases []domain.Phase) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Phases (%s)", kind)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")
	for _, p := range phases {
		fmt.Fprintf(&b, "  %s  %s\n", dimStyle.Render(fmt.Sprintf("%3d%%", p.Percentage)), p.Status)
	}
	return b.String()
}

func renderField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(name, 12)), value)
}

func renderAnomaly(b *strings.Builder, a domain.Anomaly) {
	tag := severityTag(a.Severity)
	conf := dimStyle.Render(fmt.Sprintf("%d%%", a.Confidence))
	fmt.Fprintf(b, "    %s %s  %s\n", tag, labelStyle.Render(a.Name), conf)
	fmt.Fprintf(b, "           %s\n", dimStyle.Render(a.Description))
}

func renderSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", sectionHeaderStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(items))))
	for _, item := range items {
		fmt.Fprintf(b, "    %s %s\n", warningItemStyle.Render("●"), item)
	}
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityHigh:
		return highTagStyle.Render("high  ")
	case domain.SeverityMedium:
		return mediumTagStyle.Render("medium")
	default:
		return lowTagStyle.Render("low   ")
	}
}

func countSeverities(anomalies []domain.Anomaly) (high, medium, low int) {
	for _, a := range anomalies {
		switch a.Severity {
		case domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			medium++
		default:
			low++
		}
	}
	return
}

func coloredBar(score, width int, color lipgloss.Color) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func verdictColor(tier domain.Tier) lipgloss.Color {
	switch tier {
	case domain.TierHigh:
		return danger
	case domain.TierMedium:
		return warning
	default:
		return success
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats past analyses for terminal output.
func RenderHistory(entries []domain.HistoryEntry, cfg domain.AnalyzerConfig) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No analysis history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Analysis History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}
		id := e.AnalysisID
		if len(id) > 8 {
			id = id[:8]
		}
		if id == "" {
			id = "········"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(verdictColor(cfg.TierFor(e.Score))).
			Render(fmt.Sprintf("%3d/100", e.Score))

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(id),
			scoreStyled,
			padRight(e.Verdict, 20),
			e.Filename,
		)
	}

	return b.String()
}

// RenderBatch formats the outcome of a directory scan.
func RenderBatch(report *domain.BatchReport, cfg domain.AnalyzerConfig) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Directory Scan") + "  " + dimStyle.Render(report.RootPath) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	if len(report.Items) == 0 {
		b.WriteString("  " + dimStyle.Render("No media files found.") + "\n")
		return b.String()
	}

	for _, it := range report.Items {
		if it.Report == nil {
			fmt.Fprintf(&b, "  %s  %s  %s\n", highTagStyle.Render("error "), padRight(it.Path, 32), dimStyle.Render(it.Error))
			continue
		}
		tier := cfg.TierFor(it.Report.Score)
		score := lipgloss.NewStyle().Foreground(verdictColor(tier)).Render(fmt.Sprintf("%3d/100", it.Report.Score))
		fmt.Fprintf(&b, "  %s  %s  %s\n", score, padRight(it.Path, 32), domain.VerdictFor(it.Report.Score, cfg))
	}

	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d analyzed", report.Analyzed)))
	if report.Flagged > 0 {
		b.WriteString("  " + highTagStyle.Render(fmt.Sprintf("%d flagged", report.Flagged)))
	}
	if report.Failed > 0 {
		b.WriteString("  " + mediumTagStyle.Render(fmt.Sprintf("%d failed", report.Failed)))
	}
	b.WriteString("\n")
	return b.String()
}
