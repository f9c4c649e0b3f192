// Package tui is the interactive Bubble Tea front end. It renders the store
// after every change and never mutates items except through the store.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/packlist/internal/form"
	"github.com/Makepad-fr/packlist/internal/logging"
	"github.com/Makepad-fr/packlist/internal/model"
	"github.com/Makepad-fr/packlist/internal/store"
	"github.com/Makepad-fr/packlist/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeNotice
	modeConfirmClear
)

// lines reserved below the list for footer and prompts
const chromeHeight = 9

// Options configure the TUI.
type Options struct {
	Sort        model.SortCriterion
	MaxQuantity int
	Logger      *log.Logger
	// Clipboard receives yanked text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box, text := t.Muted.Render(t.BoxUnchecked), ui.ItemText(it.Item)
	if it.Packed {
		box, text = t.Success.Render(t.BoxChecked), t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+box+" "+text)
}

// Model is the Bubble Tea model for the packing list.
type Model struct {
	store *store.ListStore
	list  list.Model
	keys  keyMap
	sort  model.SortCriterion
	mode  mode

	form   *form.Form
	ti     textinput.Model
	notice string
	status string

	width, height int

	log  *log.Logger
	clip func(string) error
}

// New builds a model over st.
func New(st *store.ListStore, opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clipboard.WriteAll
	}
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = keys.listBindings
	l.AdditionalFullHelpKeys = keys.listBindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item description..."
	ti.CharLimit = 200

	m := Model{
		store: st,
		list:  l,
		keys:  keys,
		sort:  model.ParseSort(string(opt.Sort)),
		form:  form.New(opt.MaxQuantity),
		ti:    ti,
		log:   opt.Logger,
		clip:  opt.Clipboard,
	}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(st *store.ListStore, opt Options, progOpts ...tea.ProgramOption) error {
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(New(st, opt), progOpts...)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(max(ws.Width-4, 10), max(ws.Height-chromeHeight, 3))
		return m, nil
	}
	kmsg, isKey := msg.(tea.KeyMsg)

	switch m.mode {
	case modeNotice:
		if isKey {
			m.mode, m.notice = modeAdd, ""
		}
		return m, nil

	case modeConfirmClear:
		if isKey {
			if key.Matches(kmsg, m.keys.Yes) {
				n := m.store.Len()
				m.store.Clear()
				m.log.Debug("cleared list", "removed", n)
				m.status = fmt.Sprintf("cleared %d items", n)
			} else {
				m.status = "kept all items"
			}
			m.mode = modeBrowse
			return m, m.refresh()
		}
		return m, nil

	case modeAdd:
		if isKey {
			return m.updateAdd(kmsg)
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// while typing a filter every key belongs to the list
	if isKey && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(kmsg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(kmsg, m.keys.Add):
			m.mode = modeAdd
			m.form.Reset()
			m.ti.SetValue("")
			m.status = ""
			return m, m.ti.Focus()
		case key.Matches(kmsg, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				m.store.TogglePacked(it.ID)
				m.log.Debug("toggled item", "id", it.ID, "packed", !it.Packed)
				return m, m.refresh()
			}
			return m, nil
		case key.Matches(kmsg, m.keys.Delete):
			if it, ok := m.selected(); ok {
				m.store.Delete(it.ID)
				m.log.Debug("deleted item", "id", it.ID)
				m.status = "removed " + ui.ItemText(it)
				return m, m.refresh()
			}
			return m, nil
		case key.Matches(kmsg, m.keys.Sort):
			m.sort = m.sort.Next()
			m.status = m.sort.Label()
			return m, m.refresh()
		case key.Matches(kmsg, m.keys.Clear):
			if m.store.Len() > 0 {
				m.mode = modeConfirmClear
			}
			return m, nil
		case key.Matches(kmsg, m.keys.Yank):
			if err := m.clip(m.plainText()); err != nil {
				m.log.Warn("clipboard", "err", err)
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied list to clipboard"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.form.Description = m.ti.Value()
		it, err := m.form.Submit()
		if err != nil {
			m.notice = err.Error()
			m.mode = modeNotice
			return m, nil
		}
		m.store.Add(it)
		m.log.Debug("added item", "id", it.ID, "description", it.Description, "quantity", it.Quantity)
		m.status = "added " + ui.ItemText(it)
		m.ti.SetValue("")
		m.ti.Blur()
		m.mode = modeBrowse
		return m, m.refresh()
	case key.Matches(msg, m.keys.Cancel):
		m.form.Reset()
		m.ti.SetValue("")
		m.ti.Blur()
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.More):
		m.form.Inc()
		return m, nil
	case key.Matches(msg, m.keys.Less):
		m.form.Dec()
		return m, nil
	case key.Matches(msg, m.keys.Packed):
		m.form.Packed = !m.form.Packed
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// refresh rebuilds the list rows from the store's current view.
func (m *Model) refresh() tea.Cmd {
	view := m.store.SortedView(m.sort)
	items := make([]list.Item, 0, len(view))
	for _, it := range view {
		items = append(items, listItem{it})
	}
	idx := m.list.Index()
	cmd := m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = ui.Header(m.store.Stats())
	return cmd
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	return li.Item, ok
}

// plainText is the current view without styling, for the clipboard.
func (m Model) plainText() string {
	var b strings.Builder
	for _, it := range m.store.SortedView(m.sort) {
		box := "[ ]"
		if it.Packed {
			box = "[x]"
		}
		fmt.Fprintf(&b, "%s %s\n", box, ui.ItemText(it))
	}
	b.WriteString(m.store.Stats().Summary())
	return b.String()
}

func (m Model) View() string {
	t := ui.Current()
	st := m.store.Stats()

	sections := []string{m.list.View(), ""}
	sections = append(sections,
		t.Muted.Render(ui.ProgressBar(st.PackedCount, st.Total, 28)+"  "+m.sort.Label()),
		ui.Footer(st),
	)
	if m.status != "" {
		sections = append(sections, t.Accent.Render(m.status))
	}

	switch m.mode {
	case modeAdd, modeNotice:
		sections = append(sections, m.addView())
	case modeConfirmClear:
		sections = append(sections, box(t, t.Error.Render(
			fmt.Sprintf("Clear all %d items? (y/n)", m.store.Len()))))
	}
	return box(t, strings.Join(sections, "\n"))
}

func (m Model) addView() string {
	t := ui.Current()
	packed := t.BoxUnchecked
	if m.form.Packed {
		packed = t.BoxChecked
	}
	lines := []string{
		t.Title.Render("What are your tasks 🤓?"),
		m.ti.View(),
		fmt.Sprintf("Quantity: %2d of %d (↑/↓)   Packed: %s (tab)", m.form.Quantity, m.form.Max, packed),
	}
	if m.mode == modeNotice {
		lines = append(lines, t.Error.Render("✖ "+m.notice), t.Muted.Render("press any key"))
	}
	return box(t, strings.Join(lines, "\n"))
}

func box(t ui.Theme, inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}
