package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dragdeck/internal/adapters/tui/styles"
	"dragdeck/internal/application"
	"dragdeck/internal/application/commands"
	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	New    key.Binding
	Delete key.Binding
	Yank   key.Binding
	Reload key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous list"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next list"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new card"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete card"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy title"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BoardModel is the model for the board view. It threads the drag
// engine's (state, cache) pair through every pointer notification and
// renders the reconciled order; its own layout table is the bounds
// collaborator the controller reads.
type BoardModel struct {
	ViewState

	repo ports.BoardRepository
	ctrl *application.Controller

	board   domain.Board
	ordered []domain.DeclaredList[domain.Card]
	cache   domain.PositionCache
	drag    domain.DragState
	layout  boardLayout

	cursorList int
	cursorCard int
}

// NewBoardModel creates a new board view model
func NewBoardModel(repo ports.BoardRepository) *BoardModel {
	m := &BoardModel{
		repo:  repo,
		cache: domain.PositionCache{},
		drag:  domain.Idle(),
	}
	m.ctrl = application.NewController(ports.BoundsFunc(m.itemBounds))
	return m
}

func (m *BoardModel) itemBounds(id domain.ItemID) (domain.Rect, bool) {
	slot, ok := m.layout.cards[id]
	return slot.rect, ok
}

// Init initializes the board view
func (m *BoardModel) Init() tea.Cmd {
	return m.loadBoard
}

func (m *BoardModel) loadBoard() tea.Msg {
	board, err := m.repo.Load()
	if err != nil {
		return errMsg{err}
	}
	return boardLoadedMsg{board}
}

type boardLoadedMsg struct {
	board domain.Board
}

type errMsg struct {
	err error
}

// Reload returns a command that re-reads the board from the repository
func (m *BoardModel) Reload() tea.Cmd {
	return m.loadBoard
}

// reflow reconciles the declared lists against the cache and rebuilds
// the layout table from the result.
func (m *BoardModel) reflow() {
	m.ordered, m.cache = application.RenderOrder(m.board.DeclaredLists(), m.cache, application.CardIdentity)
	m.layout = computeLayout(m.ordered, m.Width)
	m.clampCursor()
}

func (m *BoardModel) clampCursor() {
	if len(m.ordered) == 0 {
		m.cursorList, m.cursorCard = 0, 0
		return
	}
	if m.cursorList >= len(m.ordered) {
		m.cursorList = len(m.ordered) - 1
	}
	if m.cursorList < 0 {
		m.cursorList = 0
	}
	n := len(m.ordered[m.cursorList].Items)
	if m.cursorCard >= n {
		m.cursorCard = n - 1
	}
	if m.cursorCard < 0 {
		m.cursorCard = 0
	}
}

func (m *BoardModel) cursorCardAt() (domain.Card, bool) {
	if m.cursorList >= len(m.ordered) {
		return domain.Card{}, false
	}
	cards := m.ordered[m.cursorList].Items
	if m.cursorCard >= len(cards) {
		return domain.Card{}, false
	}
	return cards[m.cursorCard], true
}

// Update handles messages for the board view
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.layout = computeLayout(m.ordered, m.Width)
		return m, nil

	case boardLoadedMsg:
		m.board = msg.board
		m.reflow()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *BoardModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := domain.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if id, list, idx, ok := m.layout.cardAt(p); ok {
			m.drag, m.cache = m.ctrl.PointerDown(m.drag, m.cache, id, list, idx, p)
			m.selectCard(list, idx)
			m.ClearMessage()
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion:
		if !m.ctrl.IsDragging(m.drag) {
			return m, nil
		}
		m.drag, m.cache = m.ctrl.PointerMove(m.drag, m.cache, p)
		dragged, _ := m.drag.Item()

		var moved *domain.Moved
		if id, list, idx, ok := m.layout.cardAt(p); ok && id != dragged.ID {
			m.drag, m.cache, moved = m.ctrl.HoverItem(m.drag, m.cache, list, id, idx)
		} else if list, ok := m.layout.listAt(p); ok && m.listEmpty(list) {
			m.drag, m.cache, moved = m.ctrl.HoverEmptyList(m.drag, m.cache, list)
		}
		if moved != nil {
			m.reflow()
		}
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		var ev *domain.Committed
		m.drag, m.cache, ev = m.ctrl.PointerUp(m.drag, m.cache)
		if ev == nil {
			return m, nil
		}
		if err := m.repo.ApplyMove(*ev); err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		if ev.FromList != ev.List || ev.FromIndex != ev.Index {
			m.SetMessage(fmt.Sprintf("Moved %s to %s[%d]", ev.Item, ev.List, ev.Index), false)
		}
		return m, m.loadBoard
	}

	return m, nil
}

func (m *BoardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, BoardKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, BoardKeys.Cancel):
		if m.ctrl.IsDragging(m.drag) {
			m.drag, m.cache = m.ctrl.Cancel(m.drag, m.cache)
			m.reflow()
			m.SetMessage("Drag cancelled", false)
		}
		return m, nil

	case key.Matches(msg, BoardKeys.Up):
		m.cursorCard--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, BoardKeys.Down):
		m.cursorCard++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, BoardKeys.Left):
		m.cursorList--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, BoardKeys.Right):
		m.cursorList++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, BoardKeys.New):
		if m.cursorList < len(m.ordered) {
			listID := string(m.ordered[m.cursorList].ID)
			return m, func() tea.Msg {
				return SwitchToCreateMsg{ListID: listID}
			}
		}
		return m, nil

	case key.Matches(msg, BoardKeys.Delete):
		card, ok := m.cursorCardAt()
		if !ok {
			return m, nil
		}
		cmd := commands.NewRemoveCardCommand(m.repo, string(card.ID))
		result, err := cmd.Execute(context.Background())
		if err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.SetMessage(result.Message, false)
		return m, m.loadBoard

	case key.Matches(msg, BoardKeys.Yank):
		card, ok := m.cursorCardAt()
		if !ok {
			return m, nil
		}
		// Copy title to clipboard
		clipboard.WriteAll(card.Title)
		m.SetMessage(fmt.Sprintf("Copied %q", card.Title), false)
		return m, nil

	case key.Matches(msg, BoardKeys.Reload):
		return m, m.loadBoard

	case key.Matches(msg, BoardKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

func (m *BoardModel) selectCard(list domain.ListID, idx int) {
	for i, l := range m.ordered {
		if l.ID == list {
			m.cursorList = i
			m.cursorCard = idx
			m.clampCursor()
			return
		}
	}
}

func (m *BoardModel) listEmpty(list domain.ListID) bool {
	for _, l := range m.ordered {
		if l.ID == list {
			return len(l.Items) == 0
		}
	}
	return false
}

// hoveredList returns the list the drag clone's center is currently
// over, used to highlight the drop target.
func (m *BoardModel) hoveredList() (domain.ListID, bool) {
	clone, ok := m.ctrl.ClonePlacement(m.drag)
	if !ok {
		return "", false
	}
	return m.layout.listAt(clone.Center())
}

// View renders the board view
func (m *BoardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.ColumnTitle.Render("dragdeck"))
	b.WriteString("\n\n")

	dragged, dragging := m.drag.Item()
	hovered, _ := m.hoveredList()

	cols := make([]string, 0, len(m.ordered))
	for li, list := range m.ordered {
		colStyle := styles.Column
		if dragging && list.ID == hovered {
			colStyle = styles.ColumnHovered
		}

		lines := make([]string, 0, 1+len(list.Items))
		lines = append(lines, styles.ColumnTitle.Render(truncate(m.listTitle(list.ID), colContentWidth)))

		for ci, card := range list.Items {
			style := styles.Card
			switch {
			case dragging && card.ID == dragged.ID:
				style = styles.CardDragged
			case li == m.cursorList && ci == m.cursorCard:
				style = styles.CardSelected
			}
			lines = append(lines, style.Width(cardInnerWidth).Render(truncate(card.Title, cardTextWidth)))
		}
		if len(list.Items) == 0 {
			lines = append(lines, styles.Subtitle.Render("(empty)"))
		}

		content := lipgloss.JoinVertical(lipgloss.Left, lines...)
		cols = append(cols, colStyle.Width(colContentWidth+2).Height(m.layout.contentHeight).Render(content))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")
	b.WriteString(m.statusBar(dragging, dragged))

	return b.String()
}

func (m *BoardModel) statusBar(dragging bool, dragged domain.DraggingItem) string {
	if m.Message != "" {
		if m.MessageErr {
			return styles.ErrorMsg.Render(m.Message)
		}
		return styles.Success.Render(m.Message)
	}
	if dragging {
		card, _, ok := m.board.FindCard(dragged.ID)
		title := string(dragged.ID)
		if ok {
			title = card.Title
		}
		return styles.StatusBar.Render(fmt.Sprintf("dragging %q (release to drop, esc to cancel)", title))
	}
	hints := []string{
		styles.HelpKey.Render("drag") + styles.HelpDesc.Render(" reorder"),
		styles.HelpKey.Render("n") + styles.HelpDesc.Render(" new"),
		styles.HelpKey.Render("d") + styles.HelpDesc.Render(" delete"),
		styles.HelpKey.Render("y") + styles.HelpDesc.Render(" copy"),
		styles.HelpKey.Render("?") + styles.HelpDesc.Render(" help"),
		styles.HelpKey.Render("q") + styles.HelpDesc.Render(" quit"),
	}
	return strings.Join(hints, styles.HelpDesc.Render(" • "))
}

func (m *BoardModel) listTitle(id domain.ListID) string {
	if l, ok := m.board.List(id); ok && l.Title != "" {
		return l.Title
	}
	return string(id)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
