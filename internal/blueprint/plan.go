package blueprint

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PlannedFile is one file the renderer will write: a destination path
// relative to the target directory and the template that produces it.
type PlannedFile struct {
	Dest     string
	Template string
}

// Plan computes the file layout for the given answers: files whose When
// guard fails are dropped, and destination paths are rendered against the
// template data. Pure; does no I/O.
func (b *Blueprint) Plan(data map[string]any, ans Answers) ([]PlannedFile, error) {
	var out []PlannedFile
	for _, f := range b.Files {
		g, err := parseWhen(f.When)
		if err != nil {
			return nil, err
		}
		if !g.matches(ans) {
			continue
		}

		dest, err := renderString(f.Path, f.Path, data)
		if err != nil {
			return nil, fmt.Errorf("render path %s: %w", f.Path, err)
		}
		dest = filepath.FromSlash(strings.TrimSpace(dest))
		if dest == "" || dest == "." || strings.Contains(dest, "..") || filepath.IsAbs(dest) {
			return nil, fmt.Errorf("file %s renders to unsafe destination %q", f.Path, dest)
		}

		out = append(out, PlannedFile{Dest: dest, Template: f.Template})
	}
	return out, nil
}
