package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dragdeck/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("dragdeck Help"))
	b.WriteString("\n")

	b.WriteString(styles.Subtitle.Render("Drag-and-drop card board"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(helpLine("press + drag", "Pick up a card and move it"))
	b.WriteString(helpLine("release", "Drop the card where it is"))
	b.WriteString(helpLine("esc (while dragging)", "Cancel and restore the order"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move between cards"))
	b.WriteString(helpLine("h / l / ← / →", "Move between lists"))
	b.WriteString(helpLine("n", "New card in the current list"))
	b.WriteString(helpLine("d", "Delete the selected card"))
	b.WriteString(helpLine("y", "Copy the selected card's title"))
	b.WriteString(helpLine("r", "Reload the board"))
	b.WriteString(helpLine("q", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("A card moves only once the pointer crosses its midpoint"))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("in the direction of travel, so hovering a boundary never flickers."))

	return b.String()
}

func helpLine(keys, desc string) string {
	return styles.HelpKey.Render(keys) + "  " + styles.HelpDesc.Render(desc) + "\n"
}
