package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/deskbar/internal/bar"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const solutionsDoc = `{
	"solutions": [{
		"id": "com.example.magnifier",
		"settings": [
			{"name": "zoom", "handler": {"kind": "keyvalue", "root": "HKCU", "key": "Software\\Magnifier", "name": "zoom", "valueType": "integer"}}
		]
	}]
}`

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "solutions.json", solutionsDoc)
	path := writeFile(t, dir, "bar.json", `{
		"solutions": "solutions.json",
		"items": [
			{"id": "help", "label": "Help", "action": {"type": "link", "url": "https://example.com"}},
			{"id": "zoom", "kind": "multi", "buttons": {
				"up": {"value": "inc", "action": {"type": "setting", "settingId": "com.example.magnifier/zoom"}}
			}}
		]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Bar.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(cfg.Bar.Items))
	}
	if cfg.Solutions == nil {
		t.Fatal("solutions catalogue not loaded")
	}
	if _, err := cfg.Solutions.GetSetting("com.example.magnifier/zoom"); err != nil {
		t.Errorf("referenced setting not in catalogue: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bar.yaml", `
items:
  - id: help
    label: Help
    action:
      type: link
      url: https://example.com
  - id: pad
    action:
      type: application
      exe: notepad.exe
      args: ["--new"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	item, err := cfg.Bar.Find("pad")
	if err != nil {
		t.Fatal(err)
	}
	if item.Action.Kind != bar.ActionApplication {
		t.Errorf("kind = %q", item.Action.Kind)
	}
	if got := item.Action.Application.Args; len(got) != 1 || got[0] != "--new" {
		t.Errorf("args = %v", got)
	}
}

func TestLoad_ValidationAppliesToYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bar.yml", `
items:
  - id: bad
    action:
      type: application
`)
	if _, err := Load(path); err == nil {
		t.Error("invalid action in YAML should fail decode")
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty items", `{"items": []}`},
		{"duplicate ids", `{"items": [
			{"id": "x", "action": {"type": "noop"}},
			{"id": "x", "action": {"type": "noop"}}
		]}`},
		{"not json", `items: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("Parse succeeded")
			}
		})
	}
}

func TestLoad_MissingSolutionsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bar.json", `{
		"solutions": "absent.json",
		"items": [{"id": "x", "action": {"type": "noop"}}]
	}`)
	if _, err := Load(path); err == nil {
		t.Error("missing solutions file should fail")
	}
}
