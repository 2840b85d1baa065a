// Package notify renders transient user-facing messages, the terminal
// equivalent of toast notifications.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Terminal writes one styled line per message. Safe for concurrent use.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

func NewTerminal(out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:     out,
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (t *Terminal) Success(msg string) { t.write(t.success, "✔", msg) }

func (t *Terminal) Error(msg string) { t.write(t.failure, "✖", msg) }

func (t *Terminal) write(style lipgloss.Style, icon, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, style.Render(icon+" "+msg))
}
