package terminal

import (
	"fmt"
	"strings"
)

// Colors for terminal output.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Status helpers. Styling follows the same capability verdict as the menu,
// so a dumb terminal gets the same text without escape codes.

// Success prints a green success message.
func (t *Terminal) Success(msg string) {
	fmt.Fprintf(t.out, "%s%s✓%s %s\n", t.style(Bold), t.style(Green), t.style(Reset), msg)
}

// Error prints a red error message.
func (t *Terminal) Error(msg string) {
	fmt.Fprintf(t.out, "%s%s✗%s %s\n", t.style(Bold), t.style(Red), t.style(Reset), msg)
}

// Info prints a blue info message.
func (t *Terminal) Info(msg string) {
	fmt.Fprintf(t.out, "%s%si%s %s\n", t.style(Bold), t.style(Blue), t.style(Reset), msg)
}

// Warning prints a yellow warning message.
func (t *Terminal) Warning(msg string) {
	fmt.Fprintf(t.out, "%s%s!%s %s\n", t.style(Bold), t.style(Yellow), t.style(Reset), msg)
}

// Header prints a bold header.
func (t *Terminal) Header(msg string) {
	fmt.Fprintf(t.out, "\n%s%s%s\n", t.style(Bold), msg, t.style(Reset))
}

// Detail prints an indented label/value line.
func (t *Terminal) Detail(label, value string) {
	fmt.Fprintf(t.out, "  %s%s:%s %s\n", t.style(Dim), label, t.style(Reset), value)
}

// Divider prints a horizontal line.
func (t *Terminal) Divider() {
	fmt.Fprintf(t.out, "%s%s%s\n", t.style(Dim), strings.Repeat("─", 60), t.style(Reset))
}

// Banner prints the welcome box with the given version.
func (t *Terminal) Banner(version string) {
	dim, reset, bold := t.style(Dim), t.style(Reset), t.style(Bold)
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "  %s╭─────────────────────────────────╮%s\n", dim, reset)
	fmt.Fprintf(t.out, "  %s│%s  loom %s%-26s%s%s│%s\n", dim, reset, bold, "v"+version, reset, dim, reset)
	fmt.Fprintf(t.out, "  %s│%s  Project scaffolding, answered  %s│%s\n", dim, reset, dim, reset)
	fmt.Fprintf(t.out, "  %s╰─────────────────────────────────╯%s\n", dim, reset)
	fmt.Fprintln(t.out)
}
