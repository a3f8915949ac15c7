// Package blueprint defines the template sets loom scaffolds from: a YAML
// manifest describing the interview questions and the files to write, plus
// the template content itself. Built-in blueprints are compiled into the
// binary; user blueprints are picked up from the loom root.
package blueprint

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin
var builtinFS embed.FS

// Question types.
const (
	QuestionSelect  = "select"
	QuestionText    = "text"
	QuestionConfirm = "confirm"
)

// Manifest is the parsed blueprint.yaml.
type Manifest struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Questions   []Question `yaml:"questions"`
	Files       []FileSpec `yaml:"files"`
}

// Question is one interview step.
type Question struct {
	Name    string   `yaml:"name"`
	Prompt  string   `yaml:"prompt"`
	Type    string   `yaml:"type"`
	Options []Choice `yaml:"options"`
	Default string   `yaml:"default"`
}

// Choice is one selectable answer for a select question.
type Choice struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// FileSpec maps a template to its destination. Path may contain template
// expressions; When is an optional "question=value" / "question!=value"
// guard against the interview answers.
type FileSpec struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template"`
	When     string `yaml:"when"`
}

// Blueprint is a loaded, validated blueprint with its template files.
type Blueprint struct {
	Manifest
	fsys fs.FS
}

// Summary describes an available blueprint.
type Summary struct {
	Name        string
	Description string
	BuiltIn     bool
}

// List returns every available blueprint, built-ins first, each group
// sorted by name. userDir may be empty or missing.
func List(userDir string) ([]Summary, error) {
	var out []Summary

	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read built-in blueprints: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub, err := fs.Sub(builtinFS, "builtin/"+e.Name())
		if err != nil {
			return nil, err
		}
		m, err := readManifest(sub)
		if err != nil {
			return nil, fmt.Errorf("built-in blueprint %s: %w", e.Name(), err)
		}
		out = append(out, Summary{Name: m.Name, Description: m.Description, BuiltIn: true})
	}

	if userDir != "" {
		entries, err := os.ReadDir(userDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read blueprint dir: %w", err)
		}
		var user []Summary
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			sub := os.DirFS(filepath.Join(userDir, e.Name()))
			m, err := readManifest(sub)
			if err != nil {
				continue // not a blueprint directory
			}
			user = append(user, Summary{Name: m.Name, Description: m.Description})
		}
		sort.Slice(user, func(i, j int) bool { return user[i].Name < user[j].Name })
		out = append(out, user...)
	}

	return out, nil
}

// Load resolves a blueprint by name, preferring a user blueprint over a
// built-in of the same name.
func Load(name, userDir string) (*Blueprint, error) {
	if userDir != "" {
		dir := filepath.Join(userDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return loadFS(os.DirFS(dir))
		}
	}

	sub, err := fs.Sub(builtinFS, "builtin/"+name)
	if err == nil {
		if _, statErr := fs.Stat(sub, "blueprint.yaml"); statErr == nil {
			return loadFS(sub)
		}
	}

	return nil, fmt.Errorf("blueprint %q not found", name)
}

func readManifest(fsys fs.FS) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, "blueprint.yaml")
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse blueprint.yaml: %w", err)
	}
	return &m, nil
}

func loadFS(fsys fs.FS) (*Blueprint, error) {
	m, err := readManifest(fsys)
	if err != nil {
		return nil, err
	}
	b := &Blueprint{Manifest: *m, fsys: fsys}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Blueprint) validate() error {
	if b.Name == "" {
		return fmt.Errorf("blueprint has no name")
	}
	seen := map[string]bool{}
	for i, q := range b.Questions {
		if q.Name == "" || q.Prompt == "" {
			return fmt.Errorf("blueprint %s: question %d needs both name and prompt", b.Name, i)
		}
		if seen[q.Name] {
			return fmt.Errorf("blueprint %s: duplicate question %q", b.Name, q.Name)
		}
		seen[q.Name] = true
		switch q.Type {
		case QuestionText, QuestionConfirm:
		case QuestionSelect:
			if len(q.Options) == 0 {
				return fmt.Errorf("blueprint %s: select question %q has no options", b.Name, q.Name)
			}
			for j, c := range q.Options {
				if c.Key == "" {
					return fmt.Errorf("blueprint %s: question %q option %d has an empty key", b.Name, q.Name, j)
				}
			}
			if q.Default != "" && !hasChoice(q.Options, q.Default) {
				return fmt.Errorf("blueprint %s: question %q default %q is not an option", b.Name, q.Name, q.Default)
			}
		default:
			return fmt.Errorf("blueprint %s: question %q has unknown type %q", b.Name, q.Name, q.Type)
		}
	}
	for i, f := range b.Files {
		if f.Path == "" || f.Template == "" {
			return fmt.Errorf("blueprint %s: file %d needs both path and template", b.Name, i)
		}
		if _, err := parseWhen(f.When); err != nil {
			return fmt.Errorf("blueprint %s: file %s: %w", b.Name, f.Path, err)
		}
	}
	return nil
}

func hasChoice(opts []Choice, key string) bool {
	for _, c := range opts {
		if c.Key == key {
			return true
		}
	}
	return false
}

// defaultAnswer is the answer used when the interview runs non-interactively.
func (q Question) defaultAnswer() string {
	if q.Default != "" {
		return q.Default
	}
	switch q.Type {
	case QuestionSelect:
		return q.Options[0].Key
	case QuestionConfirm:
		return "yes"
	}
	return ""
}

// guard is a parsed When expression.
type guard struct {
	question string
	value    string
	negate   bool
}

func parseWhen(expr string) (*guard, error) {
	if expr == "" {
		return nil, nil
	}
	op := "="
	idx := strings.Index(expr, "!=")
	if idx >= 0 {
		op = "!="
	} else {
		idx = strings.Index(expr, "=")
		if idx < 0 {
			return nil, fmt.Errorf("invalid when guard %q", expr)
		}
	}
	q := strings.TrimSpace(expr[:idx])
	v := strings.TrimSpace(expr[idx+len(op):])
	if q == "" || v == "" {
		return nil, fmt.Errorf("invalid when guard %q", expr)
	}
	return &guard{question: q, value: v, negate: op == "!="}, nil
}

func (g *guard) matches(ans Answers) bool {
	if g == nil {
		return true
	}
	got := ans[g.question]
	if g.negate {
		return got != g.value
	}
	return got == g.value
}
