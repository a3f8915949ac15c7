package blueprint

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"lower":   strings.ToLower,
	"upper":   strings.ToUpper,
	"replace": strings.ReplaceAll,
}

func renderString(name, text string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderResult reports what the renderer did.
type RenderResult struct {
	Written []string
	Skipped []string // existing files left alone (force not set)
}

// Render writes every planned file under targetDir, creating parent
// directories as needed. Existing files are skipped unless force is set.
func (b *Blueprint) Render(targetDir string, plan []PlannedFile, data map[string]any, force bool) (*RenderResult, error) {
	res := &RenderResult{}
	for _, pf := range plan {
		raw, err := fs.ReadFile(b.fsys, path.Join("templates", pf.Template))
		if err != nil {
			return res, fmt.Errorf("read template %s: %w", pf.Template, err)
		}

		content, err := renderString(pf.Template, string(raw), data)
		if err != nil {
			return res, fmt.Errorf("render %s: %w", pf.Template, err)
		}

		dest := filepath.Join(targetDir, pf.Dest)
		if !force {
			if _, err := os.Stat(dest); err == nil {
				res.Skipped = append(res.Skipped, pf.Dest)
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return res, fmt.Errorf("create directory for %s: %w", pf.Dest, err)
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", pf.Dest, err)
		}
		res.Written = append(res.Written, pf.Dest)
	}
	return res, nil
}
