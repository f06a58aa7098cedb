// Package notify prints single-line user notifications in color.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

// Notifier writes warnings, errors and confirmations to w.
type Notifier struct {
	w io.Writer
}

// New returns a Notifier writing to w.
func New(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

// Warning prints a non-blocking warning, e.g. a refused generation.
func (n *Notifier) Warning(msg string) {
	warnColor.Fprintln(n.w, "⚠ "+msg)
}

// Error prints a failure.
func (n *Notifier) Error(err error) {
	errorColor.Fprintln(n.w, "✗ "+err.Error())
}

// Success prints a confirmation.
func (n *Notifier) Success(format string, args ...any) {
	successColor.Fprintln(n.w, "✓ "+fmt.Sprintf(format, args...))
}
