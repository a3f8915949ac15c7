package terminal

import "strings"

// InteractionCapable reports whether it is safe to drive this terminal with
// raw-mode escape sequences. The same verdict decides both ANSI styling and
// whether the arrow menu is used at all.
//
// A "dumb" (or unset) TERM refuses outright. On Windows the arrow menu is
// only trusted under an MSYS/Git-Bash layer, which reliably forwards escape
// sequences; plain Windows consoles get the numbered fallback. Everywhere
// else a real TTY with a non-dumb TERM is good enough.
func (t *Terminal) InteractionCapable() bool {
	if t.plain {
		return false
	}
	termType := strings.ToLower(strings.TrimSpace(t.env("TERM")))
	if termType == "" || termType == "dumb" {
		return false
	}
	if !t.isTTY(t.inFd) {
		return false
	}
	if t.goos == "windows" {
		return t.env("MSYSTEM") != ""
	}
	return true
}

// style returns the given ANSI code when styling is safe, or the empty
// string when output must stay plain.
func (t *Terminal) style(code string) string {
	if t.InteractionCapable() {
		return code
	}
	return ""
}
