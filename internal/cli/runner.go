package cli

import (
	"io"
	"os"

	"github.com/idilsaglam/todos/internal/store/linestore"
	"github.com/idilsaglam/todos/internal/ui"
)

// Options carry everything a command needs from the process.
type Options struct {
	Path   string // store file; see linestore.DefaultFileName
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Theme  string
	Color  ui.ColorMode
}

type app struct {
	store *linestore.Store
	ui    *ui.Printer
	in    io.Reader
}

func newApp(opt Options) *app {
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Path == "" {
		opt.Path = linestore.DefaultFileName
	}
	theme, _ := ui.LookupTheme(opt.Theme)
	return &app{
		store: linestore.New(opt.Path, linestore.WithLogger(linestore.NewLogger(opt.Stderr))),
		ui:    ui.NewPrinter(opt.Stdout, opt.Stderr, theme, opt.Color),
		in:    opt.Stdin,
	}
}

// Run dispatches a verb and returns the exit code (0 ok, 1 error).
func Run(args []string, opt Options) int {
	a := newApp(opt)
	if len(args) == 0 {
		a.printHelp()
		return ExitOK
	}
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "help", "-h", "--help":
		a.printHelp()
		return ExitOK
	case "add":
		err = a.add(rest)
	case "list":
		err = a.list(rest)
	case "done":
		err = a.done(rest)
	case "rm", "remove":
		err = a.remove(rest)
	case "edit":
		err = a.edit(rest)
	case "clear":
		err = a.clear()
	case "stats":
		err = a.stats()
	case "browse":
		err = a.browse()
	case "export":
		err = a.export(rest)
	default:
		a.ui.Fail("unknown command: " + cmd)
		a.ui.Println()
		a.printHelp()
		return ExitError
	}
	return a.report(err)
}

var usages = map[string]string{
	"add":    "add <task text...>",
	"done":   "done <id>",
	"rm":     "rm <id>",
	"edit":   "edit <id> <new text...>",
	"export": "export [--format json|yaml]",
}

// PrintHelp writes usage to stdout.
func PrintHelp() { newApp(Options{}).printHelp() }

func (a *app) printHelp() {
	a.ui.Printf(`todo - a tiny task tracker

Usage:
  todo [--theme classic|neon|mono] [--color|--no-color] <command> [args]

Commands:
  add <task text...>          Add a new task
  list [--all|-a]             List tasks (default: pending only)
  done <id>                   Mark a task done
  rm <id> | remove <id>       Remove a task
  edit <id> <new text...>     Replace a task's text
  clear                       Remove all tasks (asks for confirmation)
  stats                       Show progress
  browse                      Interactive list (space toggle, a add, e edit, d delete)
  export [--format json|yaml] Print all tasks in a portable format
  help                        Show this help

Examples:
  todo add "Buy milk"
  todo list --all
  todo done 2
  todo edit 3 Buy oat milk

Data file: %s in the current directory.
`, linestore.DefaultFileName)
}
