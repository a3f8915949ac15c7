package terminal

import "bufio"

// Event is one logical key event decoded from the raw input stream.
type Event int

const (
	// EventOther covers every key the menu does not act on.
	EventOther Event = iota
	EventEnter
	EventUp
	EventDown
)

const esc = 0x1b

// readEvent blocks for the next logical key event. A read failure before
// the first byte of an event is returned as an error; anything that goes
// wrong mid-sequence (unknown lead-in, truncated sequence, end of stream)
// degrades to EventOther so the menu loop never sees an invalid symbol.
func readEvent(r *bufio.Reader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return EventOther, err
	}
	switch b {
	case '\r', '\n':
		return EventEnter, nil
	case esc:
		return readEscape(r), nil
	}
	return EventOther, nil
}

// readEscape decodes the remainder of an escape sequence. Arrow keys arrive
// as CSI (ESC [) or SS3 (ESC O) sequences, optionally carrying numeric
// modifier parameters such as "1;2" for Shift, then a final letter.
func readEscape(r *bufio.Reader) Event {
	lead, err := r.ReadByte()
	if err != nil {
		return EventOther
	}
	if lead != '[' && lead != 'O' {
		return EventOther
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			return EventOther
		}
		if (b >= '0' && b <= '9') || b == ';' {
			continue
		}
		switch b {
		case 'A':
			return EventUp
		case 'B':
			return EventDown
		}
		// 'C'/'D' (right/left) and unknown finals are ignored.
		return EventOther
	}
}
