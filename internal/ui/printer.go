// Package ui prints the wizard's status lines on the diagnostics stream.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes styled one-line messages. Questions and the generated
// configuration never go through it.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

// NewPrinter styles output for w according to mode: "always", "never" or
// "auto" (colors only when w is a terminal).
func NewPrinter(w io.Writer, mode string) Printer {
	r := lipgloss.NewRenderer(w)
	if Styled(w, mode) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Styled reports whether mode enables colors for w.
func Styled(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Banner prints the program name and version.
func (p Printer) Banner(version string) {
	fmt.Fprintf(p.w, "%s %s\n", p.title.Render("njeeny"), p.muted.Render(version))
	fmt.Fprintln(p.w, p.muted.Render("sensible and secure nginx configurations"))
}

func (p Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.success.Render("[OK]"), msg)
}

func (p Printer) Warn(msg string) {
	fmt.Fprintln(p.w, p.warn.Render("[WARN]"), msg)
}

func (p Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.err.Render("[ERR]"), msg)
}
