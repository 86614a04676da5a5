package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects how color support is decided.
type ColorMode int

const (
	ColorAuto ColorMode = iota // color only when the writer is a terminal
	ColorAlways
	ColorNever
)

// Printer writes user-facing messages. Each stream has its own lipgloss
// renderer so piping stdout doesn't strip color from stderr and vice versa.
type Printer struct {
	out, err   io.Writer
	outR, errR *lipgloss.Renderer
	theme      Theme
}

// NewPrinter binds a theme to the given output and error streams.
func NewPrinter(out, errOut io.Writer, theme Theme, mode ColorMode) *Printer {
	p := &Printer{
		out:   out,
		err:   errOut,
		outR:  lipgloss.NewRenderer(out),
		errR:  lipgloss.NewRenderer(errOut),
		theme: theme,
	}
	if theme.Name == "mono" {
		mode = ColorNever
	}
	switch mode {
	case ColorAlways:
		p.outR.SetColorProfile(termenv.ANSI256)
		p.errR.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		p.outR.SetColorProfile(termenv.Ascii)
		p.errR.SetColorProfile(termenv.Ascii)
	}
	return p
}

// Theme returns the active theme.
func (p *Printer) Theme() Theme { return p.theme }

// Renderer is the stdout renderer, carrying the resolved color profile.
func (p *Printer) Renderer() *lipgloss.Renderer { return p.outR }

// Out is the stdout writer, for plain text that must not be restyled.
func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) OK(msg string) {
	s := p.outR.NewStyle().Foreground(p.theme.Success)
	fmt.Fprintln(p.out, s.Render(p.theme.SymDone+" "+msg))
}

func (p *Printer) Fail(msg string) {
	s := p.errR.NewStyle().Foreground(p.theme.Error).Bold(true)
	fmt.Fprintln(p.err, s.Render(p.theme.SymFail+" "+msg))
}

// Hint prints a faint line on the error stream.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.err, p.errR.NewStyle().Foreground(p.theme.Muted).Faint(true).Render(msg))
}

func (p *Printer) Println(a ...any) { fmt.Fprintln(p.out, a...) }

func (p *Printer) Printf(format string, a ...any) { fmt.Fprintf(p.out, format, a...) }

// Color renders s in c for stdout.
func (p *Printer) Color(c lipgloss.TerminalColor, s string) string {
	return p.outR.NewStyle().Foreground(c).Render(s)
}

// Bold renders s bold for stdout.
func (p *Printer) Bold(s string) string {
	return p.outR.NewStyle().Bold(true).Render(s)
}
