package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	mono, _ := LookupTheme("mono")
	assert.Equal(t, "#####.....  50%", ProgressBar(mono, 1, 2, 10))
	assert.Equal(t, "..........   0%", ProgressBar(mono, 0, 0, 10))
	assert.Equal(t, "##### 100%", ProgressBar(mono, 3, 3, 1))
}

func TestLookupTheme(t *testing.T) {
	for _, name := range ThemeNames {
		th, ok := LookupTheme(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, th.Name)
	}
	th, ok := LookupTheme("NEON")
	assert.True(t, ok)
	assert.Equal(t, "neon", th.Name)

	th, ok = LookupTheme("disco")
	assert.False(t, ok)
	assert.Equal(t, "classic", th.Name)
}

func TestPrinter_PlainWhenNotATerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	th, _ := LookupTheme("classic")
	p := NewPrinter(&out, &errOut, th, ColorAuto)

	p.OK("Added task 1")
	p.Fail("no task with id 5")
	p.Hint("usage: todo done <id>")

	assert.Equal(t, "✔ Added task 1\n", out.String())
	assert.Equal(t, "✖ no task with id 5\nusage: todo done <id>\n", errOut.String())
}

func TestPrinter_ColorAlways(t *testing.T) {
	var out, errOut bytes.Buffer
	th, _ := LookupTheme("classic")
	p := NewPrinter(&out, &errOut, th, ColorAlways)

	p.OK("saved")
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "saved")
}

func TestPrinter_MonoNeverColors(t *testing.T) {
	var out, errOut bytes.Buffer
	th, _ := LookupTheme("mono")
	p := NewPrinter(&out, &errOut, th, ColorAlways)

	p.OK("saved")
	assert.Equal(t, "x saved\n", out.String())
}

func TestPanel(t *testing.T) {
	var out bytes.Buffer
	th, _ := LookupTheme("mono")
	p := NewPrinter(&out, &out, th, ColorNever)

	p.Panel([]string{"Todos", "ab"})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"+-------+",
		"| Todos |",
		"| ab    |",
		"+-------+",
	}, lines)
}
