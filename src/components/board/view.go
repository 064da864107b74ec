// view.go - Pure projection from the board state to a terminal frame.
// Three regions top to bottom: the compose box, the message list and the
// error banner. Nothing here performs I/O, so the view is testable without
// a terminal.

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"msgboard/src/models"
)

// Height of one rendered message bubble: one text line plus the border.
const messageBlockHeight = 3

func getSpinnerChar(index int) string {
	spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinnerChars[index%len(spinnerChars)]
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	inputBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	messageStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)

	// Header
	banner := figure.NewFigure("MSG BOARD", "", true).String()
	header := titleStyle.Render(banner) + "\n" +
		statusStyle.Render(fmt.Sprintf("Messages: %d", len(m.messages)))

	// Compose box
	inputBox := inputBoxStyle.Width(m.width - 2).Render("Say something: " + m.renderDraft())

	// Message list
	var blocks []string
	if m.loading {
		blocks = append(blocks, statusStyle.Render(getSpinnerChar(m.spinner)+" Fetching messages..."))
	} else if len(m.messages) == 0 {
		blocks = append(blocks, statusStyle.Render("No messages yet..."))
	} else {
		end := m.scrollPos + m.visibleRows()
		if end > len(m.messages) {
			end = len(m.messages)
		}
		for _, msg := range m.messages[m.scrollPos:end] {
			blocks = append(blocks, messageStyle.Render(msg.Text))
		}
	}
	list := strings.Join(blocks, "\n")

	sections := []string{header, inputBox, list}

	// Error banner, empty when there is nothing to report.
	if m.lastError != nil {
		sections = append(sections, errorStyle.Render(errorText(m.lastError)))
	}

	return strings.Join(sections, "\n")
}

// renderDraft shows the compose text with a cursor bar at the edit position.
func (m Model) renderDraft() string {
	runes := []rune(m.composeText)
	var b strings.Builder
	for i := 0; i <= len(runes); i++ {
		if i == m.cursorPos {
			b.WriteString("|")
		}
		if i < len(runes) {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

// visibleRows reports how many message blocks fit between the header and the
// compose box.
func (m Model) visibleRows() int {
	headerHeight := 8 // banner plus count line
	inputHeight := 3
	rows := (m.height - headerHeight - inputHeight) / messageBlockHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// errorText maps a fetch failure onto the exact string shown in the banner.
func errorText(err models.TransportError) string {
	switch e := err.(type) {
	case *models.BadURLError:
		return "Bad URL" + e.URL
	case *models.TimeoutError:
		return "timeout"
	case *models.NetworkError:
		return "network error"
	case *models.BadStatusError:
		return strconv.Itoa(e.Code)
	case *models.BadBodyError:
		return e.Message
	}
	return err.Error()
}
