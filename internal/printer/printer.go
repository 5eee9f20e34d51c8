// Package printer отвечает за вывод результатов команд в консоль.
package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render печатает строки обработчика: первая как заголовок, остальные как тело.
func Render(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, titleStyle.Render("=== "+lines[0]+" ==="))
	for _, line := range lines[1:] {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

// Errorf печатает одну строку ошибки.
func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Mutedln печатает вспомогательную строку приглушенным цветом.
func Mutedln(w io.Writer, s string) {
	fmt.Fprintln(w, mutedStyle.Render(s))
}
