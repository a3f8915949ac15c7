package blueprint

import (
	"strings"
	"testing"
	"testing/fstest"
)

func manifestFS(yaml string, templates map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{"blueprint.yaml": &fstest.MapFile{Data: []byte(yaml)}}
	for name, content := range templates {
		fsys["templates/"+name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestListIncludesBuiltins(t *testing.T) {
	got, err := List("")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := map[string]bool{"go-cli": false, "go-library": false, "web-static": false}
	for _, s := range got {
		if _, ok := want[s.Name]; ok {
			want[s.Name] = true
			if !s.BuiltIn {
				t.Fatalf("%s should be marked built-in", s.Name)
			}
			if s.Description == "" {
				t.Fatalf("%s has no description", s.Name)
			}
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("built-in blueprint %s missing from List", name)
		}
	}
}

func TestLoadBuiltinValidates(t *testing.T) {
	for _, name := range []string{"go-cli", "go-library", "web-static"} {
		b, err := Load(name, "")
		if err != nil {
			t.Fatalf("Load(%s) returned error: %v", name, err)
		}
		if b.Name != name {
			t.Fatalf("loaded blueprint named %q, want %q", b.Name, name)
		}
		if len(b.Files) == 0 {
			t.Fatalf("%s has no files", name)
		}
	}
}

func TestLoadUnknownBlueprint(t *testing.T) {
	if _, err := Load("does-not-exist", ""); err == nil {
		t.Fatal("expected error for unknown blueprint")
	}
}

func TestValidateRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"missing name",
			"description: x",
			"no name",
		},
		{
			"select without options",
			"name: x\nquestions:\n  - name: q\n    prompt: Q?\n    type: select",
			"no options",
		},
		{
			"unknown question type",
			"name: x\nquestions:\n  - name: q\n    prompt: Q?\n    type: multi",
			"unknown type",
		},
		{
			"default not an option",
			"name: x\nquestions:\n  - name: q\n    prompt: Q?\n    type: select\n    default: z\n    options:\n      - key: a",
			"not an option",
		},
		{
			"duplicate question",
			"name: x\nquestions:\n  - name: q\n    prompt: Q?\n    type: text\n  - name: q\n    prompt: Q2?\n    type: text",
			"duplicate",
		},
		{
			"bad when guard",
			"name: x\nfiles:\n  - path: a\n    template: a.tmpl\n    when: nonsense",
			"when guard",
		},
		{
			"file without template",
			"name: x\nfiles:\n  - path: a",
			"path and template",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadFS(manifestFS(tc.yaml, nil))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseWhen(t *testing.T) {
	g, err := parseWhen("license=mit")
	if err != nil {
		t.Fatalf("parseWhen returned error: %v", err)
	}
	if g.question != "license" || g.value != "mit" || g.negate {
		t.Fatalf("unexpected guard %+v", g)
	}
	if !g.matches(Answers{"license": "mit"}) {
		t.Fatal("equality guard should match")
	}
	if g.matches(Answers{"license": "none"}) {
		t.Fatal("equality guard should not match other values")
	}

	neg, err := parseWhen("license != none")
	if err != nil {
		t.Fatalf("parseWhen returned error: %v", err)
	}
	if !neg.negate {
		t.Fatal("expected negated guard")
	}
	if neg.matches(Answers{"license": "none"}) {
		t.Fatal("negated guard should not match the excluded value")
	}
	if !neg.matches(Answers{"license": "mit"}) {
		t.Fatal("negated guard should match other values")
	}

	var empty *guard
	if !empty.matches(Answers{}) {
		t.Fatal("absent guard always matches")
	}
}
