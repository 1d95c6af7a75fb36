package progress

import (
	"fmt"
	"io"
	"strings"

	tui "github.com/charmbracelet/lipgloss"
)

// statusPrinter maintains a single status line on a stream, repainting it
// in place with a carriage return.  Each repaint pads with spaces to the
// width of the previous line so that a shorter line fully covers a longer
// one.  Widths are measured in terminal cells, ignoring ANSI escape
// sequences, so styled lines are padded correctly.
type statusPrinter struct {
	w         io.Writer
	lastWidth int
	lastLine  string
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	return &statusPrinter{w: w}
}

// print replaces the current status line with s.
func (p *statusPrinter) print(s string) error {
	width := tui.Width(s)
	pad := max(p.lastWidth-width, 0)

	if _, err := fmt.Fprintf(p.w, "\r%s%s", s, strings.Repeat(" ", pad)); err != nil {
		return err
	}

	p.lastWidth = width
	p.lastLine = s
	return nil
}

// erase blanks the status line and returns the cursor to the start of it.
func (p *statusPrinter) erase() error {
	if _, err := fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.lastWidth)); err != nil {
		return err
	}

	p.lastWidth = 0
	p.lastLine = ""
	return nil
}

// newline finishes the status line, leaving it on screen.
func (p *statusPrinter) newline() error {
	if _, err := fmt.Fprintln(p.w); err != nil {
		return err
	}

	p.lastWidth = 0
	p.lastLine = ""
	return nil
}

// message writes msg on its own line without losing the status line: the
// status line is erased, the message written, and the status line
// repainted on the following line.
func (p *statusPrinter) message(msg string) error {
	line := p.lastLine
	if line != "" {
		if err := p.erase(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(p.w, msg); err != nil {
		return err
	}

	if line == "" {
		return nil
	}
	return p.print(line)
}
