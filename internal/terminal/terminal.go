// Package terminal implements the interactive surface of loom: an inline
// arrow-key selection menu with a numbered line-input fallback, free-text
// prompts, and the styled status output used by the commands.
//
// All terminal access goes through a single Terminal handle constructed in
// main, so nothing in here touches process-wide state behind the caller's
// back and the whole package tests against in-memory readers and writers.
package terminal

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

// Terminal is the process's interactive console. It owns the input reader
// for the lifetime of the process; raw mode is borrowed per menu call and
// always returned.
type Terminal struct {
	reader *bufio.Reader
	inFd   int
	out    io.Writer
	env    func(string) string
	goos   string
	isTTY  func(fd int) bool
	enter  func(fd int) (*rawSession, error)
	plain  bool
}

// New returns a Terminal bound to stdin/stdout.
func New() *Terminal {
	return &Terminal{
		reader: bufio.NewReader(os.Stdin),
		inFd:   int(os.Stdin.Fd()),
		out:    os.Stdout,
		env:    os.Getenv,
		goos:   runtime.GOOS,
		isTTY:  term.IsTerminal,
		enter:  enterRaw,
	}
}

// ForcePlain disables ANSI styling and the arrow menu for this terminal,
// regardless of what capability detection would report.
func (t *Terminal) ForcePlain() {
	t.plain = true
}

func (t *Terminal) write(s string) {
	io.WriteString(t.out, s)
}
