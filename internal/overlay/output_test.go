package overlay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MannLabs/peptide-overlay/config"
	"gopkg.in/yaml.v3"
)

func testOutput(t *testing.T) *Output {
	datasets := []Dataset{{Name: "run1", Records: []Record{{"CDE", 1}, {"DEF", 2}, {"XYZ", 3}}}}
	groups, err := Groups("ABCDEFGH", "ABC,BCD", datasets, 0.1, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	return newOutput("test", "ABCDEFGH", groups, &config.Config{Offset: 0.1, OffsetFile: 0.5}, 0.01)
}

func Test_newOutput(t *testing.T) {
	out := testOutput(t)

	if len(out.Groups) != 2 || len(out.Segments) != 4 || len(out.Warnings) != 1 {
		t.Fatalf("newOutput() groups = %d, segments = %d, warnings = %d", len(out.Groups), len(out.Segments), len(out.Warnings))
	}

	input, run1 := out.Groups[0], out.Groups[1]
	if input.MeanScore != nil || input.Color != "#000000" || input.Occurrences != 2 {
		t.Errorf("newOutput() input group = %+v", input)
	}
	if run1.MeanScore == nil || *run1.MeanScore != 1.5 {
		t.Errorf("newOutput() run1 mean score = %v, want 1.5", run1.MeanScore)
	}
	if run1.Baseline != 1.5 || run1.NotFound != 1 || run1.Name != "run1" {
		t.Errorf("newOutput() run1 group = %+v", run1)
	}
}

func Test_writeOutput(t *testing.T) {
	out := testOutput(t)
	dir := t.TempDir()

	jsonOut := filepath.Join(dir, "layout.json")
	if err := writeOutput(jsonOut, out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(jsonOut)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON Output
	if err = json.Unmarshal(b, &fromJSON); err != nil {
		t.Fatalf("writeOutput() wrote invalid JSON: %v", err)
	}
	if len(fromJSON.Segments) != 4 || fromJSON.Segments[3].Hover.Score == nil {
		t.Errorf("writeOutput() JSON segments = %+v", fromJSON.Segments)
	}

	yamlOut := filepath.Join(dir, "layout.yaml")
	if err := writeOutput(yamlOut, out); err != nil {
		t.Fatal(err)
	}
	b, err = os.ReadFile(yamlOut)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML Output
	if err = yaml.Unmarshal(b, &fromYAML); err != nil {
		t.Fatalf("writeOutput() wrote invalid YAML: %v", err)
	}
	if fromYAML.Target != "test" || len(fromYAML.Groups) != 2 {
		t.Errorf("writeOutput() YAML = %+v", fromYAML)
	}

	if err := writeOutput(filepath.Join(dir, "missing", "layout.json"), out); err == nil {
		t.Error("writeOutput() to a missing dir, want error")
	}
}
