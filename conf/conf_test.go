package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "histo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp yaml: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `
outputdir: /tmp/histos
precision: 6
chart:
  type: " BAR "
  width: 40
log:
  level: debug
  file: histo.log
  maxsizemb: 10
  maxbackups: 3
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.OutputDir != "/tmp/histos" {
		t.Errorf("outputdir: %s", c.OutputDir)
	}
	if c.Precision != 6 {
		t.Errorf("precision: %d; want 6", c.Precision)
	}
	if c.Chart.Type != "bar" || c.Chart.Width != 40 {
		t.Errorf("chart: %+v", c.Chart)
	}
	if c.Log.Level != "DEBUG" {
		t.Errorf("log level: %s; want DEBUG", c.Log.Level)
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(writeTemp(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.OutputDir != DefaultOutputDir {
		t.Errorf("outputdir: %s", c.OutputDir)
	}
	if c.Precision != DefaultPrecision {
		t.Errorf("precision: %d", c.Precision)
	}
	if c.Chart.Type != DefaultChartType || c.Chart.Width != DefaultChartWidth {
		t.Errorf("chart: %+v", c.Chart)
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(writeTemp(t, "chart: {type: pie}")); err == nil {
		t.Error("unknown chart type should fail")
	}
	if _, err := Load(writeTemp(t, "precision: -1")); err == nil {
		t.Error("negative precision should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestInitAndGet(t *testing.T) {
	if err := Init(writeTemp(t, "precision: 4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Get().Precision; got != 4 {
		t.Errorf("precision: %d; want 4", got)
	}
}
