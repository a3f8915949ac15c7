package terminal

import "golang.org/x/term"

// rawSession holds the terminal mode snapshot taken before entering raw
// mode. The underlying stream is never closed here; only the mode is
// borrowed and must be handed back through restore.
type rawSession struct {
	fd       int
	state    *term.State
	restored bool
}

func enterRaw(fd int) (*rawSession, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawSession{fd: fd, state: state}, nil
}

// restore puts the terminal back into its captured mode. Safe to call more
// than once; only the first call talks to the platform.
func (s *rawSession) restore() error {
	if s.restored {
		return nil
	}
	s.restored = true
	if s.state == nil {
		return nil
	}
	return term.Restore(s.fd, s.state)
}
