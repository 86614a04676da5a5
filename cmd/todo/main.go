package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/todos/internal/cli"
	"github.com/idilsaglam/todos/internal/store/linestore"
	"github.com/idilsaglam/todos/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Root flags (apply to every command)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	theme := fs.String("theme", "classic", "color theme: "+strings.Join(ui.ThemeNames, ", "))
	forceColor := fs.Bool("color", false, "always use color")
	noColor := fs.Bool("no-color", false, "never use color")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintHelp()
			return 0
		}
		fmt.Fprintln(os.Stderr, "todo:", err)
		cli.PrintHelp()
		return 1
	}
	if _, ok := ui.LookupTheme(*theme); !ok {
		fmt.Fprintf(os.Stderr, "todo: unknown theme %q (want %s)\n", *theme, strings.Join(ui.ThemeNames, ", "))
		return 1
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "todo: getwd:", err)
		return 1
	}

	color := ui.ColorAuto
	switch {
	case *noColor:
		color = ui.ColorNever
	case *forceColor:
		color = ui.ColorAlways
	}

	// Hand the remaining args to the CLI runner.
	return cli.Run(fs.Args(), cli.Options{
		Path:   filepath.Join(wd, linestore.DefaultFileName),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Theme:  *theme,
		Color:  color,
	})
}
