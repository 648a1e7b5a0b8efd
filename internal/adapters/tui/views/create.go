package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dragdeck/internal/adapters/tui/styles"
	"dragdeck/internal/application/commands"
	"dragdeck/internal/ports"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// CreateModel is the model for the new-card form
type CreateModel struct {
	ViewState

	repo         ports.BoardRepository
	listID       string
	titleInput   textinput.Model
	noteInput    textinput.Model
	focusedField int
}

// NewCreateModel creates a new create view model
func NewCreateModel(repo ports.BoardRepository) *CreateModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Card title"
	titleInput.CharLimit = 100

	noteInput := textinput.New()
	noteInput.Placeholder = "Note (optional)"
	noteInput.CharLimit = 200

	return &CreateModel{
		repo:       repo,
		titleInput: titleInput,
		noteInput:  noteInput,
	}
}

// SetList sets the target list for the new card
func (m *CreateModel) SetList(listID string) {
	m.listID = listID
	m.titleInput.SetValue("")
	m.noteInput.SetValue("")
	m.focusedField = 0
	m.ClearMessage()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	m.titleInput.Focus()
	m.noteInput.Blur()
	return textinput.Blink
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}

		case key.Matches(msg, CreateKeys.Tab):
			m.focusedField = (m.focusedField + 1) % 2
			if m.focusedField == 0 {
				m.titleInput.Focus()
				m.noteInput.Blur()
			} else {
				m.titleInput.Blur()
				m.noteInput.Focus()
			}
			return m, nil

		case key.Matches(msg, CreateKeys.Submit):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focusedField == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.noteInput, cmd = m.noteInput.Update(msg)
	}
	return m, cmd
}

func (m *CreateModel) submit() tea.Cmd {
	cmd := commands.NewAddCardCommand(m.repo, m.listID, m.titleInput.Value())
	cmd.Note = m.noteInput.Value()

	result, err := cmd.Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return func() tea.Msg {
		return CreateSuccessMsg{Message: result.Message}
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("New card in %s", m.listID)))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Title"))
	b.WriteString("\n")
	b.WriteString(styles.InputField.Render(m.titleInput.View()))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Note"))
	b.WriteString("\n")
	b.WriteString(styles.InputField.Render(m.noteInput.View()))
	b.WriteString("\n\n")

	if m.Message != "" && m.MessageErr {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HelpKey.Render("enter"))
	b.WriteString(styles.HelpDesc.Render(" create "))
	b.WriteString(styles.HelpKey.Render("tab"))
	b.WriteString(styles.HelpDesc.Render(" next field "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" cancel"))

	return b.String()
}
