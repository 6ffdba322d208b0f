package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/realitycheck/realitycheck/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	warningItemStyle   = lipgloss.NewStyle().Foreground(warning)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderConfig summarizes the effective analyzer tuning.
func RenderConfig(source string, cfg domain.AnalyzerConfig) string {
	var b strings.Builder

	thresholds := titleStyle.Render("Analyzer configuration") + "\n" +
		dimStyle.Render(source) + "\n\n" +
		fmt.Sprintf("fake ≥ %d   medium ≥ %d   clamp %s",
			cfg.FakeThreshold, cfg.MediumThreshold, formatRange(cfg.ScoreClamp))
	b.WriteString(boxStyle.Render(thresholds))
	b.WriteString("\n")

	renderList(&b, "Fake keywords", cfg.FakeKeywords)
	renderList(&b, "Real keywords", cfg.RealKeywords)
	renderTuning(&b, "Image", cfg.Image)
	renderTuning(&b, "Video", cfg.Video)

	limit := "unlimited"
	if cfg.MaxFileSize > 0 {
		limit = fmt.Sprintf("%d bytes", cfg.MaxFileSize)
	}
	allowed := "any image/* or video/*"
	if len(cfg.AllowedTypes) > 0 {
		allowed = strings.Join(cfg.AllowedTypes, ", ")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", sectionHeaderStyle.Render("Uploads"))
	fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render(padRight("max size", 12)), limit)
	fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render(padRight("types", 12)), allowed)

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Run `realitycheck init` to write these defaults to .realitycheck.yaml."))
	b.WriteString("\n")
	return b.String()
}

func renderList(b *strings.Builder, title string, items []string) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", sectionHeaderStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(items))))
	if len(items) > 0 {
		fmt.Fprintf(b, "    %s\n", strings.Join(items, ", "))
	}
}

func renderTuning(b *strings.Builder, title string, k domain.KindTuning) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("base %d, delay %s ms", k.BaseScore, formatRange(k.DelayMS))))

	exts := make([]string, 0, len(k.Extensions))
	for ext := range k.Extensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	for _, ext := range exts {
		fmt.Fprintf(b, "    %s .%s %s\n", warningItemStyle.Render("●"), padRight(ext, 6), formatRange(k.Extensions[ext]))
	}
	for _, r := range k.SizeRules {
		fmt.Fprintf(b, "    %s %s %s\n", warningItemStyle.Render("●"), padRight(describeRule(r), 22), formatRange(r.Delta))
	}
}

func describeRule(r domain.SizeRule) string {
	if r.Above > 0 {
		return fmt.Sprintf("size > %d", r.Above)
	}
	return fmt.Sprintf("size < %d", r.Below)
}

func formatRange(r domain.Range) string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
