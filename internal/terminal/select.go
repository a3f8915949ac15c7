package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	pointer = "▸"

	hideCursor    = "\033[?25l"
	showCursor    = "\033[?25h"
	saveCursor    = "\0337"
	restoreCursor = "\0338"
	clearLine     = "\r\033[K"
)

// selectLoop tracks the highlighted index until Enter. moved fires only
// when the index actually changes, so a redraw never happens for input
// that bounces off either end of the list.
func selectLoop(n int, next func() (Event, error), moved func(int)) (int, error) {
	idx := 0
	for {
		ev, err := next()
		if err != nil {
			return idx, err
		}
		switch ev {
		case EventEnter:
			return idx, nil
		case EventUp:
			if idx > 0 {
				idx--
				if moved != nil {
					moved(idx)
				}
			}
		case EventDown:
			if idx < n-1 {
				idx++
				if moved != nil {
					moved(idx)
				}
			}
		}
	}
}

// selectArrow runs the raw-mode arrow menu. The cursor is saved at the
// first option line; every index change re-renders the whole block from
// that position, and on any exit the block (options plus the parked line)
// is deleted so the screen ends up exactly as it was before the menu.
func (t *Terminal) selectArrow(opts []Option) (key string, err error) {
	raw, rawErr := t.enter(t.inFd)
	if rawErr != nil {
		return "", fmt.Errorf("enter raw mode: %w", rawErr)
	}

	t.write(hideCursor)
	t.write(saveCursor)

	redraw := func(sel int) {
		t.write(restoreCursor)
		for i, opt := range opts {
			t.write(clearLine)
			if i == sel {
				t.write(fmt.Sprintf("  %s%s%s %s%s%s\r\n", Bold, Cyan, pointer, Bold, opt.Label, Reset))
			} else {
				t.write(fmt.Sprintf("    %s\r\n", opt.Label))
			}
		}
		t.write(clearLine) // parked line below the block
	}

	defer func() {
		t.write(restoreCursor)
		t.write(fmt.Sprintf("\r\033[%dM", len(opts)+1))
		t.write(showCursor)
		if restoreErr := raw.restore(); restoreErr != nil && err == nil {
			err = fmt.Errorf("restore terminal mode: %w", restoreErr)
		}
	}()

	redraw(0)

	idx, loopErr := selectLoop(len(opts),
		func() (Event, error) { return readEvent(t.reader) },
		func(i int) { redraw(i) },
	)
	if loopErr != nil {
		return "", fmt.Errorf("read menu input: %w", loopErr)
	}
	return opts[idx].Key, nil
}

// selectNumbered is the degraded menu for terminals where escape-sequence
// interaction is unsafe. It needs nothing beyond ordinary line input, so it
// also works against piped stdin.
func (t *Terminal) selectNumbered(opts []Option) (string, error) {
	for i, opt := range opts {
		fmt.Fprintf(t.out, "  [%d] %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(t.out, "Select an option [1-%d]: ", len(opts))

		line, readErr := t.reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && readErr != nil {
			return "", fmt.Errorf("read selection: %w", readErr)
		}

		n, convErr := strconv.Atoi(trimmed)
		if convErr == nil && n >= 1 && n <= len(opts) {
			return opts[n-1].Key, nil
		}

		fmt.Fprintf(t.out, "Invalid selection %q, enter a number between 1 and %d.\n", trimmed, len(opts))
		if readErr != nil {
			return "", fmt.Errorf("read selection: %w", readErr)
		}
	}
}
