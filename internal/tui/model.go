package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"habitctl/internal/models"
	"habitctl/internal/tracker"
)

type Item struct {
	Status tracker.Status
}

func (i Item) Title() string {
	if i.Status.DoneToday {
		return "✓ " + i.Status.Name
	}
	return "○ " + i.Status.Name
}

func (i Item) Description() string {
	switch {
	case i.Status.DoneToday:
		return fmt.Sprintf("completed today · streak %d", i.Status.Streak)
	case i.Status.Streak == 1:
		return "streak 1 day"
	default:
		return fmt.Sprintf("streak %d days", i.Status.Streak)
	}
}

func (i Item) FilterValue() string { return i.Status.Name }

type KeyMap struct {
	Mark key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	tracker *tracker.Tracker
	today   string
	status  string
}

func NewModel(t *tracker.Tracker) (Model, error) {
	today := time.Now().Format(models.DayLayout)
	rows, err := t.List(today)
	if err != nil {
		return Model{}, err
	}

	l := list.New(toItems(rows), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Mark}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys, tracker: t, today: today}, nil
}

func toItems(rows []tracker.Status) []list.Item {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = Item{Status: r}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mark):
			if i, ok := m.list.SelectedItem().(Item); ok {
				m.markDone(i)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) markDone(i Item) {
	res, err := m.tracker.MarkDone(i.Status.Name, m.today)
	if err != nil {
		if tracker.IsSoft(err) {
			m.status = statusStyle.Render(err.Error())
		} else {
			m.status = statusErrStyle.Render(err.Error())
		}
		return
	}

	if res.AlreadyDone {
		m.status = statusStyle.Render(fmt.Sprintf("'%s' already done today", i.Status.Name))
	} else {
		m.status = statusStyle.Render(fmt.Sprintf("'%s' done, streak %d", i.Status.Name, res.Streak))
	}

	if rows, err := m.tracker.List(m.today); err == nil {
		m.list.SetItems(toItems(rows))
	}
}

func (m Model) View() string {
	view := m.list.View()
	if m.status != "" {
		view += "\n" + m.status
	}
	return appStyle.Render(view)
}
