package output

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sampleResult struct {
	OK    bool   `yaml:"ok"              json:"ok"`
	ID    string `yaml:"id,omitempty"    json:"id,omitempty"`
	Count int    `yaml:"count,omitempty" json:"count,omitempty"`
}

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	var buf bytes.Buffer
	old := Writer
	Writer = &buf
	defer func() { Writer = old }()
	if err := fn(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	got := capture(t, func() error {
		return PrintYAML(sampleResult{OK: true, ID: "open-help", Count: 3})
	})

	var decoded sampleResult
	if err := yaml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.OK || decoded.ID != "open-help" || decoded.Count != 3 {
		t.Errorf("round trip: got %+v", decoded)
	}
}

func TestPrintYAML_OmitEmpty(t *testing.T) {
	got := capture(t, func() error {
		return PrintYAML(sampleResult{OK: true})
	})
	if strings.Contains(got, "id:") || strings.Contains(got, "count:") {
		t.Errorf("empty fields should be omitted, got:\n%s", got)
	}
}

func TestPrintJSON_SingleLine(t *testing.T) {
	got := capture(t, func() error {
		return PrintJSON(sampleResult{OK: true, ID: "a"})
	})
	if strings.Count(strings.TrimSpace(got), "\n") != 0 {
		t.Errorf("compact JSON should be one line, got:\n%s", got)
	}
}

func TestPrint_FormatSelection(t *testing.T) {
	oldFormat, oldPretty := OutputFormat, PrettyOutput
	defer func() { OutputFormat, PrettyOutput = oldFormat, oldPretty }()

	OutputFormat = FormatJSON
	PrettyOutput = true
	got := capture(t, func() error {
		return Print(sampleResult{OK: true, ID: "a"})
	})
	if !strings.Contains(got, "\n  ") {
		t.Errorf("pretty JSON should be indented, got:\n%s", got)
	}

	OutputFormat = Format("xml")
	if err := Print(sampleResult{}); err == nil {
		t.Error("unknown format should error")
	}
}
