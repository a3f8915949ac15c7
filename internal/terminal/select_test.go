package terminal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

// testTerminal builds a Terminal over in-memory streams. env defaults to an
// interaction-capable linux terminal unless overridden.
func testTerminal(input string, out io.Writer, env map[string]string) *Terminal {
	if out == nil {
		out = io.Discard
	}
	if env == nil {
		env = map[string]string{"TERM": "xterm-256color"}
	}
	return &Terminal{
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
		env:    func(k string) string { return env[k] },
		goos:   "linux",
		isTTY:  func(int) bool { return true },
		enter:  func(int) (*rawSession, error) { return &rawSession{}, nil },
	}
}

func scriptEvents(evs ...Event) func() (Event, error) {
	i := 0
	return func() (Event, error) {
		if i >= len(evs) {
			return EventOther, io.EOF
		}
		ev := evs[i]
		i++
		return ev, nil
	}
}

func TestSelectLoopEnterFirstReturnsZero(t *testing.T) {
	moves := 0
	idx, err := selectLoop(3, scriptEvents(EventEnter), func(int) { moves++ })
	if err != nil {
		t.Fatalf("selectLoop returned error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("got index %d, want 0", idx)
	}
	if moves != 0 {
		t.Fatalf("callback fired %d times, want 0", moves)
	}
}

func TestSelectLoopDownClampsAtLastIndex(t *testing.T) {
	// Five downs against three options must stop at index 2 and only
	// redraw for the two real moves.
	moves := 0
	idx, err := selectLoop(3,
		scriptEvents(EventDown, EventDown, EventDown, EventDown, EventDown, EventEnter),
		func(int) { moves++ })
	if err != nil {
		t.Fatalf("selectLoop returned error: %v", err)
	}
	if idx != 2 {
		t.Fatalf("got index %d, want 2", idx)
	}
	if moves != 2 {
		t.Fatalf("callback fired %d times, want 2", moves)
	}
}

func TestSelectLoopUpClampsAtZero(t *testing.T) {
	moves := 0
	idx, err := selectLoop(3,
		scriptEvents(EventUp, EventUp, EventEnter),
		func(int) { moves++ })
	if err != nil {
		t.Fatalf("selectLoop returned error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("got index %d, want 0", idx)
	}
	if moves != 0 {
		t.Fatalf("callback fired %d times, want 0", moves)
	}
}

func TestSelectLoopOtherEventsDoNothing(t *testing.T) {
	var seen []int
	idx, err := selectLoop(4,
		scriptEvents(EventOther, EventDown, EventOther, EventDown, EventUp, EventOther, EventEnter),
		func(i int) { seen = append(seen, i) })
	if err != nil {
		t.Fatalf("selectLoop returned error: %v", err)
	}
	if idx != 1 {
		t.Fatalf("got index %d, want 1", idx)
	}
	want := []int{1, 2, 1}
	if fmt.Sprint(seen) != fmt.Sprint(want) {
		t.Fatalf("callback saw %v, want %v", seen, want)
	}
}

func TestSelectLoopCallbackMatchesActualChangesOnly(t *testing.T) {
	// A long run past the bottom boundary then back up: exactly one
	// callback per actual change.
	events := []Event{
		EventDown, EventDown, EventDown, EventDown, // 2 real, 2 clamped (n=3)
		EventUp, EventUp, EventUp, // 2 real, 1 clamped
		EventEnter,
	}
	moves := 0
	idx, err := selectLoop(3, scriptEvents(events...), func(int) { moves++ })
	if err != nil {
		t.Fatalf("selectLoop returned error: %v", err)
	}
	if idx != 0 {
		t.Fatalf("got index %d, want 0", idx)
	}
	if moves != 4 {
		t.Fatalf("callback fired %d times, want 4", moves)
	}
}

func TestSelectArrowReturnsHighlightedKey(t *testing.T) {
	var out bytes.Buffer
	term := testTerminal("\x1b[B\x1b[B\r", &out, nil)

	opts := []Option{{"a", "Alpha"}, {"b", "Beta"}, {"c", "Gamma"}}
	key, err := term.selectArrow(opts)
	if err != nil {
		t.Fatalf("selectArrow returned error: %v", err)
	}
	if key != "c" {
		t.Fatalf("got key %q, want %q", key, "c")
	}
	if !strings.Contains(out.String(), pointer) {
		t.Fatal("expected pointer glyph in rendered output")
	}
	// Block cleanup removes the three option lines plus the parked line.
	if !strings.Contains(out.String(), "\033[4M") {
		t.Fatal("expected 4-line delete sequence on completion")
	}
}

func TestSelectArrowIgnoresNoiseInput(t *testing.T) {
	// Printable characters, horizontal arrows and an unknown escape are
	// all no-ops; only the single down moves the selection.
	var out bytes.Buffer
	term := testTerminal("zz\x1b[C\x1b[D\x1bq\x1b[B\r", &out, nil)

	key, err := term.selectArrow([]Option{{"one", "One"}, {"two", "Two"}})
	if err != nil {
		t.Fatalf("selectArrow returned error: %v", err)
	}
	if key != "two" {
		t.Fatalf("got key %q, want %q", key, "two")
	}
}

func TestSelectArrowRestoresRawModeOnInputError(t *testing.T) {
	session := &rawSession{}
	term := testTerminal("\x1b[B", nil, nil) // stream ends before Enter
	term.enter = func(int) (*rawSession, error) { return session, nil }

	if _, err := term.selectArrow([]Option{{"a", "A"}, {"b", "B"}}); err == nil {
		t.Fatal("expected error when input ends before Enter")
	}
	if !session.restored {
		t.Fatal("raw mode was not restored on the error path")
	}
}

func TestSelectNumberedPicksByNumber(t *testing.T) {
	var out bytes.Buffer
	term := testTerminal("2\n", &out, map[string]string{"TERM": "dumb"})

	key, err := term.selectNumbered([]Option{{"a", "Alpha"}, {"b", "Beta"}})
	if err != nil {
		t.Fatalf("selectNumbered returned error: %v", err)
	}
	if key != "b" {
		t.Fatalf("got key %q, want %q", key, "b")
	}
	if !strings.Contains(out.String(), "[1] Alpha") || !strings.Contains(out.String(), "[2] Beta") {
		t.Fatalf("numbered listing missing from output: %q", out.String())
	}
}

func TestSelectNumberedRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	term := testTerminal("99\nabc\n1\n", &out, map[string]string{"TERM": "dumb"})

	key, err := term.selectNumbered([]Option{{"a", "Alpha"}, {"b", "Beta"}})
	if err != nil {
		t.Fatalf("selectNumbered returned error: %v", err)
	}
	if key != "a" {
		t.Fatalf("got key %q, want %q", key, "a")
	}
	if got := strings.Count(out.String(), "Invalid selection"); got != 2 {
		t.Fatalf("reprompted %d times, want 2", got)
	}
}

func TestSelectNumberedErrorsWhenInputExhausted(t *testing.T) {
	term := testTerminal("nope\n", nil, map[string]string{"TERM": "dumb"})
	if _, err := term.selectNumbered([]Option{{"a", "Alpha"}}); err == nil {
		t.Fatal("expected error once input is exhausted")
	}
}
