package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sunghoyun/vulnview/internal/cli/formatter"
)

// warningText formats a user-correctable warning for the notice area.
func warningText(text string) string {
	return "\n  " + formatter.StyleYellow.Render("선택 필요: "+text)
}

// infoText formats an informational message for the notice area.
func infoText(text string) string {
	return "\n  " + formatter.Dim(text)
}

// errorText formats an error for the notice area.
func errorText(err error) string {
	return "\n  " + formatter.StyleRed.Render("오류: "+err.Error())
}

// wizardCompleteOutput returns a wizardCompleteMsg that displays a message string.
func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: notice(msg)}
}
