// model.go - Bubble Tea model for the single-page board view.
// The model is the one state cell of the application: the compose draft, the
// fetched message list and the last fetch error. Update and View are pure;
// the only side effect is the startup fetch command issued by Init.

package board

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"msgboard/src/models"
)

// Fetcher performs the one side effect the board ever issues: the startup
// fetch of the full message list.
type Fetcher interface {
	ListAll(ctx context.Context) ([]models.Message, models.TransportError)
}

// messagesFetchedMsg carries the result of the startup fetch back into Update.
type messagesFetchedMsg struct {
	messages []models.Message
	err      models.TransportError
}

type spinnerTickMsg struct{}

// Model holds the application state for the board page.
type Model struct {
	fetcher Fetcher

	// Core state.
	composeText string
	cursorPos   int
	messages    []models.Message
	lastError   models.TransportError

	// View-only state.
	loading   bool
	spinner   int
	scrollPos int
	width     int
	height    int
	quitting  bool
}

// NewModel returns the initial state: empty draft, no messages, no error,
// loading until the startup fetch resolves.
func NewModel(fetcher Fetcher) Model {
	return Model{
		fetcher: fetcher,
		loading: true,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchMessagesCmd(m.fetcher),
		spinnerTick(),
	)
}

// fetchMessagesCmd is issued exactly once, at startup. There is no polling
// and no re-fetch key.
func fetchMessagesCmd(f Fetcher) tea.Cmd {
	return func() tea.Msg {
		msgs, err := f.ListAll(context.Background())
		return messagesFetchedMsg{messages: msgs, err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
