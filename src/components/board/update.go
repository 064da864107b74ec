// update.go - The state transition function for the board page.
// Update performs no I/O: every arm returns a new model value and, at most,
// a command for the runtime to execute. Typing edits only the compose draft;
// the fetch result message is the only thing that touches the message list.

package board

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case spinnerTickMsg:
		if m.loading {
			m.spinner++
			return m, spinnerTick()
		}
		return m, nil

	case messagesFetchedMsg:
		m.loading = false
		if msg.err != nil {
			// The old list is kept as-is; a failed fetch only records the error.
			m.lastError = msg.err
			return m, nil
		}
		// Replace the list wholesale, never merge. An earlier fetch error is
		// intentionally left in place even after a later success; the banner
		// keeps showing it.
		m.messages = msg.messages
		m.scrollPos = 0
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Printable input goes straight into the compose draft.
	if msg.Type == tea.KeyRunes && !msg.Alt {
		m.insertDraft(string(msg.Runes))
		return m, nil
	}
	if msg.Type == tea.KeySpace {
		m.insertDraft(" ")
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left":
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case "right":
		if m.cursorPos < len([]rune(m.composeText)) {
			m.cursorPos++
		}
	case "home":
		m.cursorPos = 0
	case "end":
		m.cursorPos = len([]rune(m.composeText))

	case "backspace":
		if m.cursorPos > 0 {
			runes := []rune(m.composeText)
			m.composeText = string(runes[:m.cursorPos-1]) + string(runes[m.cursorPos:])
			m.cursorPos--
		}
	case "delete":
		runes := []rune(m.composeText)
		if m.cursorPos < len(runes) {
			m.composeText = string(runes[:m.cursorPos]) + string(runes[m.cursorPos+1:])
		}

	case "enter":
		// Posting is not wired up. The draft stays where it is.

	case "ctrl+v":
		if paste, err := clipboard.ReadAll(); err == nil {
			m.insertDraft(paste)
		}
	case "ctrl+x":
		if m.composeText != "" {
			clipboard.WriteAll(m.composeText)
			m.composeText = ""
			m.cursorPos = 0
		}

	case "up":
		if m.scrollPos > 0 {
			m.scrollPos--
		}
	case "down":
		m.scrollPos++
		m.clampScroll()
	case "pgup":
		m.scrollPos -= m.visibleRows()
		m.clampScroll()
	case "pgdn":
		m.scrollPos += m.visibleRows()
		m.clampScroll()
	}

	return m, nil
}

// insertDraft splices text into the compose draft at the cursor.
// Note the pointer receiver: handleKey mutates its local copy.
func (m *Model) insertDraft(text string) {
	runes := []rune(m.composeText)
	m.composeText = string(runes[:m.cursorPos]) + text + string(runes[m.cursorPos:])
	m.cursorPos += len([]rune(text))
}

// clampScroll keeps the scroll offset inside the message list.
func (m *Model) clampScroll() {
	maxScroll := len(m.messages) - m.visibleRows()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollPos > maxScroll {
		m.scrollPos = maxScroll
	}
	if m.scrollPos < 0 {
		m.scrollPos = 0
	}
}
