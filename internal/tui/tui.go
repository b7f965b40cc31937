// Package tui is an interactive Bubble Tea session over an in-memory list.
// Nothing is saved; the caller owns the list and sees every change.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todolist/internal/model"
)

// Scope selects which items the session shows.
type Scope int

const (
	ScopeAll Scope = iota
	ScopePending
	ScopeDone
)

// ErrItemGone is reported when the selected item is no longer in the list.
var ErrItemGone = errors.New("item is no longer in the list")

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	item *model.Item
}

func (i listItem) Title() string       { return i.item.String() }
func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Title }

// itemDelegate renders one item per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(listItem)
	if !ok {
		return
	}
	it := li.item

	box := mutedStyle.Render(boxUnchecked)
	text := it.Title
	if it.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	line := box + " " + text
	if it.DueDate != nil {
		line += " " + accentStyle.Render("(Due: "+it.DueDate.Format("Monday January 2")+")")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

var keys = struct {
	toggle, add, remove, allDone, allUndone, cycle key.Binding
}{
	toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	allDone:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done")),
	allUndone: key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "all undone")),
	cycle:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
}

// Model implements tea.Model on top of a *model.List.
type Model struct {
	todos *model.List
	scope Scope
	list  list.Model

	adding bool
	ti     textinput.Model
	addErr string

	// err is the result of the last toggle or remove.
	err error

	width, height int
}

// New returns a session over todos showing every item.
func New(todos *model.List) Model {
	l := list.New(nil, itemDelegate{}, defaultWidth-4, defaultHeight-4)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	extra := func() []key.Binding {
		return []key.Binding{keys.toggle, keys.add, keys.remove, keys.allDone, keys.allUndone, keys.cycle}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	m := Model{
		todos:  todos,
		list:   l,
		ti:     ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(todos *model.List, opts ...tea.ProgramOption) error {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	_, err := tea.NewProgram(New(todos), opts...).Run()
	return err
}

// Visible returns the list the current scope is showing. Filtered views share
// their items with the session's list.
func (m Model) Visible() *model.List {
	switch m.scope {
	case ScopePending:
		return m.todos.PendingItems()
	case ScopeDone:
		return m.todos.DoneItems()
	default:
		return m.todos
	}
}

func (m Model) View() string {
	content := m.list.View()
	if m.err != nil {
		content += "\n" + errorStyle.Render(m.err.Error())
	}
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " " + errorStyle.Render(m.addErr)
		}
		bar := frameStyle.Render(title + "\n" + m.ti.View())
		content += "\n" + bar
	}
	return frameStyle.Render(content)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.String() == "q" || msg.String() == "esc":
			return m, tea.Quit
		case key.Matches(msg, keys.toggle):
			if it := m.selected(); it != nil {
				m.err = m.toggle(it)
			}
			return m, m.refresh()
		case key.Matches(msg, keys.remove):
			if it := m.selected(); it != nil {
				m.err = m.remove(it)
			}
			return m, m.refresh()
		case key.Matches(msg, keys.allDone):
			m.Visible().MarkAllDone()
			return m, m.refresh()
		case key.Matches(msg, keys.allUndone):
			m.Visible().MarkAllUndone()
			return m, m.refresh()
		case key.Matches(msg, keys.cycle):
			m.scope = (m.scope + 1) % 3
			m.list.Select(0)
			return m, m.refresh()
		case key.Matches(msg, keys.add):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			if err := m.todos.Add(model.NewItem(title, "")); err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			m.stopAdding()
			return m, m.refresh()
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) toggle(it *model.Item) error {
	idx := m.todos.IndexOf(it)
	if idx < 0 {
		return ErrItemGone
	}
	if it.Done {
		return m.todos.MarkUndoneAt(idx)
	}
	return m.todos.MarkDoneAt(idx)
}

func (m *Model) remove(it *model.Item) error {
	idx := m.todos.IndexOf(it)
	if idx < 0 {
		return ErrItemGone
	}
	_, err := m.todos.RemoveAt(idx)
	return err
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) selected() *model.Item {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	return li.item
}

// refresh rebuilds the bubbles list from the current scope.
func (m *Model) refresh() tea.Cmd {
	visible := m.Visible()
	items := make([]list.Item, 0, visible.Len())
	visible.Each(func(it *model.Item) {
		items = append(items, listItem{item: it})
	})
	cmd := m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	dn, pn := visible.Counts()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render(visible.Title()),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), visible.Len(),
	)
	return cmd
}
