package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Success prints a bold green completion message.
func Success(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a yellow warning message.
func Warn(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf(format, args...)))
}
