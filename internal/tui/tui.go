// Package tui is the interactive task browser behind `todo browse`.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// styles are built once per browser from the active theme.
type styles struct {
	title, success, pending, accent lipgloss.Style
	muted, err, selected, done      lipgloss.Style
	help, frame                     lipgloss.Style
	boxChecked, boxUnchecked        string
	symDone, symPending             string
}

func newStyles(th ui.Theme, r *lipgloss.Renderer) styles {
	return styles{
		title:        r.NewStyle().Bold(true).Foreground(th.Title),
		success:      r.NewStyle().Foreground(th.Success),
		pending:      r.NewStyle().Foreground(th.Pending),
		accent:       r.NewStyle().Foreground(th.Accent),
		muted:        r.NewStyle().Foreground(th.Muted).Faint(true),
		err:          r.NewStyle().Foreground(th.Error).Bold(true),
		selected:     r.NewStyle().Bold(true).Reverse(true),
		done:         r.NewStyle().Faint(true).Strikethrough(true),
		help:         r.NewStyle().Faint(true),
		frame:        r.NewStyle().Border(th.Border).BorderForeground(th.Muted).Padding(0, 1),
		boxChecked:   th.BoxChecked,
		boxUnchecked: th.BoxUnchecked,
		symDone:      th.SymDone,
		symPending:   th.SymPending,
	}
}

// listItem adapts model.Task to list.Item.
type listItem struct {
	task model.Task
}

func (i listItem) Title() string       { return i.task.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.task.Text }

// single-line rows: "> ☐ 3  Buy milk"
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	// newlines would break the one-row layout
	text := strings.NewReplacer("\n", " ", "\r", " ").Replace(it.task.Text)

	box := d.st.muted.Render(d.st.boxUnchecked)
	if it.task.Done {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, d.st.muted.Render(fmt.Sprintf("%-3d", it.task.ID)), text)
}

// Model is the bubbletea model for the browser.
type Model struct {
	st      styles
	list    list.Model
	changed bool
	nextID  uint64

	// shared by inline add and edit
	ti      textinput.Model
	adding  bool
	editing bool
	editIdx int
	errMsg  string

	// input value right after loading the task, i.e. after the
	// textinput sanitizer flattened newlines
	editOrig string

	// single-level undo of the last delete
	undoIdx  int
	undoItem *listItem

	width, height int
}

var (
	addKey  = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editKey = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delKey  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	togKey  = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	undoKey = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
)

// New builds a browser over tasks, styled with th. A nil r uses the
// default lipgloss renderer.
func New(tasks []model.Task, th ui.Theme, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := newStyles(th, r)

	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, listItem{task: t})
	}

	l := list.New(items, itemDelegate{st: st}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	extra := func() []key.Binding { return []key.Binding{togKey, addKey, editKey, delKey, undoKey} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	m := Model{
		st:     st,
		list:   l,
		nextID: model.NextID(tasks),
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.refreshTitle()
	return m
}

// Run starts the browser and returns the edited list. changed reports
// whether anything was modified; when false, the input is returned as is.
func Run(tasks []model.Task, th ui.Theme, r *lipgloss.Renderer) (out []model.Task, changed bool, err error) {
	p := tea.NewProgram(New(tasks, th, r), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	fm, ok := final.(Model)
	if !ok || !fm.changed {
		return tasks, false, nil
	}
	return fm.Tasks(), true, nil
}

// Tasks returns the current list in display order, ignoring any filter.
func (m Model) Tasks() []model.Task {
	out := make([]model.Task, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.task)
		}
	}
	return out
}

// Changed reports whether the list was modified.
func (m Model) Changed() bool { return m.changed }

func (m *Model) refreshTitle() {
	tasks := m.Tasks()
	done, pending := model.Stats(tasks)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render(m.st.symDone), done,
		m.st.pending.Render(m.st.symPending), pending,
		m.st.accent.Render("Total"), len(tasks),
	)
}

// selected returns the index into Items() of the highlighted row.
func (m Model) selected() (int, listItem, bool) {
	i := m.list.GlobalIndex()
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return -1, listItem{}, false
	}
	li, ok := items[i].(listItem)
	return i, li, ok
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding || m.editing {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.list.FilterState() == list.Unfiltered {
			return m, tea.Quit
		}
	case " ":
		if i, li, ok := m.selected(); ok {
			li.task.Done = !li.task.Done
			m.list.SetItem(i, li)
			m.changed = true
			m.refreshTitle()
		}
		return m, nil
	case "d":
		if i, li, ok := m.selected(); ok {
			m.undoItem = &li
			m.undoIdx = i
			m.list.RemoveItem(i)
			m.changed = true
			m.refreshTitle()
		}
		return m, nil
	case "u":
		if m.undoItem != nil {
			idx := m.undoIdx
			if idx > len(m.list.Items()) {
				idx = len(m.list.Items())
			}
			m.list.InsertItem(idx, *m.undoItem)
			m.undoItem = nil
			m.changed = true
			m.refreshTitle()
		}
		return m, nil
	case "a":
		m.adding = true
		m.errMsg = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New task..."
		m.resize()
		return m, m.ti.Focus()
	case "e":
		if i, li, ok := m.selected(); ok {
			m.editing = true
			m.editIdx = i
			m.errMsg = ""
			m.ti.SetValue(li.task.Text)
			m.editOrig = m.ti.Value()
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit task..."
			m.resize()
			return m, m.ti.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := m.ti.Value()
			if strings.TrimSpace(text) == "" {
				m.errMsg = "Text cannot be empty"
				return m, nil
			}
			if m.adding {
				m.list.InsertItem(len(m.list.Items()), listItem{task: model.Task{ID: m.nextID, Text: text}})
				m.nextID++
				m.changed = true
			} else if m.editIdx >= 0 && m.editIdx < len(m.list.Items()) {
				// an untouched input keeps the original text, newlines included
				if li, ok := m.list.Items()[m.editIdx].(listItem); ok && text != m.editOrig {
					li.task.Text = text
					m.list.SetItem(m.editIdx, li)
					m.changed = true
				}
			}
			m.closeInput()
			m.refreshTitle()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.errMsg = ""
	m.editOrig = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add task"
		if m.editing {
			title = "Edit task"
		}
		if m.errMsg != "" {
			title += "  " + m.st.err.Render(m.errMsg)
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.ti.View())
	}
	return m.st.frame.Render(content)
}
