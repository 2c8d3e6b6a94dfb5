// Package status prints the short progress lines makectl shows around tool
// runs. Lines are colored only when the destination is a color terminal.
package status

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes status lines to one destination. Every method returns the
// destination's write error.
type Printer struct {
	w    io.Writer
	ok   lipgloss.Style
	fail lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:    w,
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Info prints a plain line.
func (p *Printer) Info(format string, args ...any) error {
	return p.line(fmt.Sprintf(format, args...))
}

// Success prints a line in the success style.
func (p *Printer) Success(format string, args ...any) error {
	return p.line(p.ok.Render(fmt.Sprintf(format, args...)))
}

// Failure prints a line in the failure style.
func (p *Printer) Failure(format string, args ...any) error {
	return p.line(p.fail.Render(fmt.Sprintf(format, args...)))
}

// Block writes b unchanged, adding a final newline if b is non-empty and
// lacks one.
func (p *Printer) Block(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b[:len(b):len(b)], '\n')
	}
	_, err := p.w.Write(b)
	return err
}

func (p *Printer) line(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}
