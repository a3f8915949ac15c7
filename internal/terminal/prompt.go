package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ReadAnswer asks a free-text question and returns the trimmed reply, or
// fallback when the reply is empty. Interactive terminals get a line editor;
// everything else gets a plain line read, so piped input works.
func (t *Terminal) ReadAnswer(prompt, fallback string) (string, error) {
	label := prompt
	if fallback != "" {
		label = fmt.Sprintf("%s %s[%s]%s", prompt, t.style(Dim), fallback, t.style(Reset))
	}

	if !t.InteractionCapable() {
		fmt.Fprintf(t.out, "%s: ", label)
		line, err := t.reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && err != nil && err != io.EOF {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if trimmed == "" {
			return fallback, nil
		}
		return trimmed, nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: fmt.Sprintf("%s%s:%s ", t.style(Bold), label, t.style(Reset)),
		Stdin:  io.NopCloser(t.reader),
		Stdout: t.out,
	})
	if err != nil {
		return "", fmt.Errorf("open prompt: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read answer: %w", err)
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return fallback, nil
	}
	return trimmed, nil
}
