package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dragdeck/internal/adapters/tui/views"
	"dragdeck/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewCreate
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo ports.BoardRepository

	state  ViewState
	board  *views.BoardModel
	create *views.CreateModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.BoardRepository) *App {
	return &App{
		repo:   repo,
		state:  ViewBoard,
		board:  views.NewBoardModel(repo),
		create: views.NewCreateModel(repo),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)

	// View switching messages
	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetList(msg.ListID)
		return a, a.create.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, a.board.Reload()

	case views.CreateSuccessMsg:
		a.state = ViewBoard
		return a, a.board.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the application
func (a *App) View() string {
	switch a.state {
	case ViewCreate:
		return a.create.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
