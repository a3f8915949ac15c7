package blueprint

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/loomkit/loom/internal/terminal"
)

// Answers maps question names to the chosen answer keys/values.
type Answers map[string]string

// Prompter is the interactive surface the interview runs against.
// *terminal.Terminal satisfies it; tests use a scripted fake.
type Prompter interface {
	SelectOption(prompt string, opts []terminal.Option) (string, error)
	ReadAnswer(prompt, fallback string) (string, error)
}

// Interview walks the blueprint's questions in order and collects answers.
// With useDefaults set, no prompting happens and every question takes its
// default answer.
func (b *Blueprint) Interview(p Prompter, useDefaults bool) (Answers, error) {
	ans := Answers{}
	for _, q := range b.Questions {
		if useDefaults {
			ans[q.Name] = q.defaultAnswer()
			continue
		}

		switch q.Type {
		case QuestionSelect:
			opts := make([]terminal.Option, len(q.Options))
			for i, c := range q.Options {
				label := c.Label
				if label == "" {
					label = c.Key
				}
				opts[i] = terminal.Option{Key: c.Key, Label: label}
			}
			key, err := p.SelectOption(q.Prompt, opts)
			if err != nil {
				return nil, fmt.Errorf("question %q: %w", q.Name, err)
			}
			ans[q.Name] = key

		case QuestionConfirm:
			key, err := p.SelectOption(q.Prompt, []terminal.Option{
				{Key: "yes", Label: "Yes"},
				{Key: "no", Label: "No"},
			})
			if err != nil {
				return nil, fmt.Errorf("question %q: %w", q.Name, err)
			}
			ans[q.Name] = key

		case QuestionText:
			v, err := p.ReadAnswer(q.Prompt, q.Default)
			if err != nil {
				return nil, fmt.Errorf("question %q: %w", q.Name, err)
			}
			ans[q.Name] = v
		}
	}
	return ans, nil
}

// TemplateData assembles the data passed to every template: the project
// name, a package-safe variant of it, the current year, and the raw answers.
func TemplateData(project string, ans Answers) map[string]any {
	return map[string]any{
		"Project": project,
		"Package": packageName(project),
		"Year":    time.Now().Year(),
		"Answers": map[string]string(ans),
	}
}

// packageName lowercases the project name and strips everything that is not
// a letter or digit, yielding a valid Go package identifier.
func packageName(project string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(project) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 || unicode.IsDigit(rune(sb.String()[0])) {
		return "app"
	}
	return sb.String()
}
