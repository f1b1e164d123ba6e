package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verisafe/shield/go-monitor/internal/region"
)

const testFixture = `{
  "description": "tightened first dimension",
  "obs_lower": [-1, -1],
  "obs_upper": [1, 1],
  "overrides": {
    "0": {"center": null, "radius": 0.5},
    "1": {"center": 0.2, "radius": 0.6}
  },
  "selector": "original",
  "samples": [
    {"index": 0, "state": [0, 0], "safe": true, "unsafe": false},
    {"index": 1, "state": [0.9, 0], "safe": false, "unsafe": true}
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, testFixture))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if f.Description == "" {
		t.Error("expected description")
	}
	if len(f.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(f.Samples))
	}

	ov := f.ToOverrides()
	if !ov[0].AtMidpoint {
		t.Error("null center should pin the rule to the midpoint")
	}
	if ov[1].AtMidpoint || ov[1].Center != 0.2 || ov[1].Radius != 0.6 {
		t.Errorf("override 1 wrong: %+v", ov[1])
	}

	sel, err := f.ToSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if sel != region.SelectOriginal {
		t.Errorf("expected original selector, got %v", sel)
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFixture_BadJSON(t *testing.T) {
	if _, err := LoadFixture(writeFixture(t, "{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFixture_EndToEnd(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, testFixture))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	env, err := f.ToEnvelope()
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	sel, err := f.ToSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	results, err := Replay(env, sel, f.ToSamples())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	summary := Summarize(results)
	if summary.Divergences != 0 {
		t.Errorf("expected fixture labels to hold, got %d divergences", summary.Divergences)
	}
	if summary.UnsafeSeen != 1 {
		t.Errorf("expected 1 unsafe sample, got %d", summary.UnsafeSeen)
	}
}

func TestFixture_DefaultSelector(t *testing.T) {
	f := &Fixture{}
	sel, err := f.ToSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if sel != region.SelectOriginal {
		t.Errorf("expected default original, got %v", sel)
	}
}
