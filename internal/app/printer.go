package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	errorColorCode   = "196" // Red
	successColorCode = "42"  // Green
)

// printer writes the status lines shown to the user.
// Only prefixes and success lines are styled; the text itself is never altered.
type printer struct {
	w            io.Writer
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
}

func newPrinter(w io.Writer, renderer *lipgloss.Renderer) *printer {
	return &printer{
		w: w,
		errorStyle: renderer.NewStyle().
			Foreground(lipgloss.Color(errorColorCode)).
			Bold(true),
		successStyle: renderer.NewStyle().
			Foreground(lipgloss.Color(successColorCode)),
	}
}

// Line prints text unstyled.
func (p *printer) Line(text string) {
	_, _ = fmt.Fprintln(p.w, text)
}

// Linef prints a formatted line unstyled.
func (p *printer) Linef(format string, args ...any) {
	p.Line(fmt.Sprintf(format, args...))
}

// Success prints text in the success color.
func (p *printer) Success(text string) {
	_, _ = fmt.Fprintln(p.w, p.successStyle.Render(text))
}

// Failure prints "<prefix> <message>" with the prefix in the error color.
func (p *printer) Failure(prefix, message string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.errorStyle.Render(prefix), message)
}

// Error prints an "Error: <message>" line.
func (p *printer) Error(message string) {
	p.Failure("Error:", message)
}
