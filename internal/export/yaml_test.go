package export

import (
	"bytes"
	"testing"

	"github.com/iksnae/session-patterns/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	report := internal.CreateTestReport(internal.CreateTestRecord("sess1"))

	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(report, &buf); err != nil {
		t.Fatalf("YAMLExporter.Export() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v\nOutput: %s", err, buf.String())
	}

	if _, ok := decoded["summary_statistics"]; !ok {
		t.Errorf("Output should contain summary_statistics key")
	}
	if _, ok := decoded["sessions"]; !ok {
		t.Errorf("Output should contain sessions key")
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("YAMLExporter.Extension() = %v, want yaml", got)
	}
}
