package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("#5AF78E") // Green - complete states
	primaryColor = lipgloss.Color("#00D7FF") // Cyan - headings
	mutedColor   = lipgloss.Color("#6C7086") // Gray - sizes, bullets

	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// GroupCount is the number of files written for one summary line.
type GroupCount struct {
	Label string
	Count int
}

// Result summarizes one generate run.
type Result struct {
	Section string
	Groups  []GroupCount
	Files   int
	Bytes   int64
}

func newResult(section string) *Result {
	return &Result{Section: section}
}

// add records one written file under label, keeping first-seen order.
func (r *Result) add(label string, size int64) {
	r.Files++
	r.Bytes += size
	for i := range r.Groups {
		if r.Groups[i].Label == label {
			r.Groups[i].Count++
			return
		}
	}
	r.Groups = append(r.Groups, GroupCount{Label: label, Count: 1})
}

// formatBytes renders n with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}

func renderSummary(results ...*Result) string {
	var b strings.Builder
	b.WriteString(doneStyle.Render("✅ Asset generation completed!"))
	b.WriteString("\n")

	total := 0
	for _, r := range results {
		total += r.Files
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Generated %s:", r.Section)))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(formatBytes(r.Bytes)))
		b.WriteString("\n")
		for _, g := range r.Groups {
			b.WriteString(fmt.Sprintf("%s %d %s\n", mutedStyle.Render("-"), g.Count, g.Label))
		}
	}

	b.WriteString(fmt.Sprintf("\nTotal: %d files\n", total))
	return b.String()
}

func printSummary(w io.Writer, results ...*Result) error {
	if w == nil {
		return nil
	}
	_, err := io.WriteString(w, renderSummary(results...))
	return err
}
