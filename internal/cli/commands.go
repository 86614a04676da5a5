package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/idilsaglam/todos/internal/codec"
	"github.com/idilsaglam/todos/internal/export"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/tui"
	"github.com/idilsaglam/todos/internal/ui"
)

// runBrowser is swapped in tests; the real one needs a terminal.
var runBrowser = tui.Run

func parseID(verb, s string) (uint64, error) {
	id, err := codec.ParseID(s)
	if err != nil {
		return 0, &ArgumentError{Verb: verb, Msg: "invalid id: " + s}
	}
	return id, nil
}

func (a *app) load() ([]model.Task, error) {
	tasks, err := a.store.Load()
	if err != nil {
		return nil, &IOError{Op: "loading", Err: err}
	}
	return tasks, nil
}

func (a *app) save(tasks []model.Task) error {
	if err := a.store.Save(tasks); err != nil {
		return &IOError{Op: "saving", Err: err}
	}
	return nil
}

func (a *app) add(args []string) error {
	// whitespace-only text is stored as given; only no text at all is refused
	text := strings.Join(args, " ")
	if text == "" {
		return &ArgumentError{Verb: "add", Msg: "add requires a task text"}
	}
	tasks, err := a.load()
	if err != nil {
		return err
	}
	id := model.NextID(tasks)
	tasks = append(tasks, model.Task{ID: id, Text: text})
	if err := a.save(tasks); err != nil {
		return err
	}
	a.ui.OK(fmt.Sprintf("Added task %d", id))
	return nil
}

func (a *app) list(args []string) error {
	showAll := false
	for _, arg := range args {
		if arg == "--all" || arg == "-a" {
			showAll = true
		}
	}
	tasks, err := a.load()
	if err != nil {
		return err
	}
	// the empty check is on the whole store, not the filtered view
	if len(tasks) == 0 {
		a.ui.Println("No tasks.")
		return nil
	}

	th := a.ui.Theme()
	a.ui.Println(a.ui.Bold("ID  Done  Task"))
	a.ui.Println(a.ui.Color(th.Muted, strings.Repeat("-", 31)))
	for _, t := range tasks {
		if !showAll && t.Done {
			continue
		}
		done := a.ui.Color(th.Pending, "no  ")
		if t.Done {
			done = a.ui.Color(th.Success, "yes ")
		}
		a.ui.Printf("%-3d  %s  %s\n", t.ID, done, t.Text)
	}
	return nil
}

func (a *app) done(args []string) error {
	if len(args) != 1 {
		return &ArgumentError{Verb: "done", Msg: "done requires exactly one id"}
	}
	id, err := parseID("done", args[0])
	if err != nil {
		return err
	}
	tasks, err := a.load()
	if err != nil {
		return err
	}
	i := model.IndexOf(tasks, id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	tasks[i].Done = true
	if err := a.save(tasks); err != nil {
		return err
	}
	a.ui.OK(fmt.Sprintf("Marked %d done", id))
	return nil
}

func (a *app) remove(args []string) error {
	if len(args) != 1 {
		return &ArgumentError{Verb: "rm", Msg: "rm requires exactly one id"}
	}
	id, err := parseID("rm", args[0])
	if err != nil {
		return err
	}
	tasks, err := a.load()
	if err != nil {
		return err
	}
	i := model.IndexOf(tasks, id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := a.save(tasks); err != nil {
		return err
	}
	a.ui.OK(fmt.Sprintf("Removed %d", id))
	return nil
}

func (a *app) edit(args []string) error {
	if len(args) < 2 {
		return &ArgumentError{Verb: "edit", Msg: "edit requires id and new text"}
	}
	id, err := parseID("edit", args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	tasks, err := a.load()
	if err != nil {
		return err
	}
	i := model.IndexOf(tasks, id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	tasks[i].Text = text
	if err := a.save(tasks); err != nil {
		return err
	}
	a.ui.OK(fmt.Sprintf("Edited %d", id))
	return nil
}

func (a *app) clear() error {
	a.ui.Println("Are you sure you want to delete ALL tasks? Type 'yes' to confirm:")
	// a read error or EOF leaves line short of "yes", which aborts
	line, _ := bufio.NewReader(a.in).ReadString('\n')
	if strings.TrimSpace(line) != "yes" {
		a.ui.Println("Aborted.")
		return nil
	}
	if err := a.store.Remove(); err != nil {
		return &IOError{Op: "removing", Err: err}
	}
	a.ui.OK("All tasks cleared.")
	return nil
}

func (a *app) stats() error {
	tasks, err := a.load()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		a.ui.Println("No tasks.")
		return nil
	}
	th := a.ui.Theme()
	done, pending := model.Stats(tasks)
	a.ui.Panel([]string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			a.ui.Bold("Todos"),
			a.ui.Color(th.Success, th.SymDone), done,
			a.ui.Color(th.Pending, th.SymPending), pending,
			a.ui.Color(th.Accent, "Total"), len(tasks),
		),
		a.ui.Color(th.Muted, ui.ProgressBar(th, done, len(tasks), 28)),
		"",
		a.ui.Color(th.Muted, "Tip: mark one done with `todo done <id>`"),
	})
	return nil
}

func (a *app) browse() error {
	tasks, err := a.load()
	if err != nil {
		return err
	}
	out, changed, err := runBrowser(tasks, a.ui.Theme(), a.ui.Renderer())
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if !changed {
		return nil
	}
	if err := a.save(out); err != nil {
		return err
	}
	a.ui.OK("saved")
	return nil
}

func (a *app) export(args []string) error {
	format := "json"
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--format" || arg == "-f":
			if i+1 >= len(args) {
				return &ArgumentError{Verb: "export", Msg: arg + " requires a value"}
			}
			i++
			format = args[i]
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		default:
			return &ArgumentError{Verb: "export", Msg: "unexpected argument: " + arg}
		}
	}
	if !export.Supported(format) {
		return &ArgumentError{Verb: "export", Msg: fmt.Sprintf("unknown format %q (want %s)", format, strings.Join(export.Formats, " or "))}
	}
	tasks, err := a.load()
	if err != nil {
		return err
	}
	if err := export.Write(a.ui.Out(), tasks, format); err != nil {
		return &IOError{Op: "exporting", Err: err}
	}
	return nil
}
