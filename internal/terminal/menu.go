package terminal

import (
	"errors"
	"fmt"
)

// Option is one selectable menu entry. Key is handed back to the caller
// verbatim; Label is what the user sees. Keys are not required to be
// unique — duplicates are independently selectable and whichever line was
// highlighted wins.
type Option struct {
	Key   string
	Label string
}

// ErrNoOptions is returned when a menu is invoked with an empty option list.
var ErrNoOptions = errors.New("menu: no options to select from")

// SelectOption shows a selection menu for the given options and blocks
// until the user confirms one, returning its Key. The arrow-key menu is
// used when capability detection allows it, the numbered fallback
// otherwise. Malformed option lists are rejected before any terminal
// interaction happens.
func (t *Terminal) SelectOption(prompt string, opts []Option) (string, error) {
	if len(opts) == 0 {
		return "", ErrNoOptions
	}
	for i, opt := range opts {
		if opt.Key == "" {
			return "", fmt.Errorf("menu: option %d (%q) has an empty key", i, opt.Label)
		}
	}

	if prompt != "" {
		fmt.Fprintf(t.out, "%s%s%s\n", t.style(Bold), prompt, t.style(Reset))
	}

	if t.InteractionCapable() {
		return t.selectArrow(opts)
	}
	return t.selectNumbered(opts)
}
