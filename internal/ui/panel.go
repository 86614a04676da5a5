package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a bar of width cells followed by a percentage.
func ProgressBar(t Theme, done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.Bar, filled) + strings.Repeat(t.BarEmpty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box around lines using the current theme.
func (p *Printer) Panel(lines []string) {
	border := p.outR.NewStyle().
		Border(p.theme.Border).
		BorderForeground(p.theme.Muted).
		Padding(0, 1)
	fmt.Fprintln(p.out, border.Render(strings.Join(lines, "\n")))
}
