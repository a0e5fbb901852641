// Package output prints styled status lines for the CLI. Styling uses
// lipgloss; callers only pick the kind of message.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes status lines. Success, info and step lines go to Out; errors
// and verbose lines go to Err so Out stays clean for piped documents.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	verbose bool
}

// New returns a printer over out and errOut, defaulting to stdout/stderr.
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, Err: errOut}
}

// SetVerbose enables Verbose lines.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Success prints a completed operation.
//
//	p.Success("Wrote dog.html")
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.Out, successStyle.Render("✔ "+msg))
}

// Error prints a failure that needs attention.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.Err, errorStyle.Render("✘ "+msg))
}

// Info prints a status update.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Out, infoStyle.Render("• "+msg))
}

// Step prints an indented sub-item.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.Out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug line only in verbose mode.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.Err, stepStyle.Render("… "+msg))
	}
}
