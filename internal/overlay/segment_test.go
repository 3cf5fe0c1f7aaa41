package overlay

import (
	"reflect"
	"testing"
)

func TestColor(t *testing.T) {
	tests := []struct {
		name  string
		group int
		want  string
	}{
		{"input peptides", 0, "#000000"},
		{"first dataset", 1, "#1f77b4"},
		{"last color", 10, "#17becf"},
		{"palette wraps", 11, "#1f77b4"},
		{"palette wraps again", 23, "#2ca02c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.group); got != tt.want {
				t.Errorf("Color(%d) = %s, want %s", tt.group, got, tt.want)
			}
		})
	}
}

func TestHover_Text(t *testing.T) {
	score := 30.5
	whole := 30.0
	tests := []struct {
		name  string
		hover Hover
		want  string
	}{
		{
			"input peptide",
			Hover{Peptide: "ABC", Start: 0, End: 3, Length: 3},
			"Peptide: ABC<br>Start: 0<br>End: 3<br>Length: 3<br>",
		},
		{
			"scored peptide",
			Hover{Peptide: "SPADKTNVK", Start: 3, End: 12, Length: 9, Score: &score},
			"Peptide: SPADKTNVK<br>Start: 3<br>End: 12<br>Length: 9<br>Score: 30.5<br>",
		},
		{
			"whole score keeps a decimal",
			Hover{Peptide: "SPADKTNVK", Start: 3, End: 12, Length: 9, Score: &whole},
			"Peptide: SPADKTNVK<br>Start: 3<br>End: 12<br>Length: 9<br>Score: 30.0<br>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hover.Text(); got != tt.want {
				t.Errorf("Hover.Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_scoreText(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{30, "30.0"},
		{-2, "-2.0"},
		{12.5, "12.5"},
		{7.25, "7.25"},
		{0.0001, "0.0001"},
		{1e20, "1e+20"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := scoreText(tt.score); got != tt.want {
				t.Errorf("scoreText(%v) = %s, want %s", tt.score, got, tt.want)
			}
		})
	}
}

func TestGroup_Segments(t *testing.T) {
	g := &Group{
		Index:       2,
		Name:        "run2",
		LegendGroup: datasetLegendGroup,
		Baseline:    2.5,
		Occurrences: []Occurrence{
			{Peptide: "VDPVNFK", Start: 93, Score: 5, Scored: true},
			{Peptide: "HG", Start: 50, Score: 2, Scored: true},
		},
		Lanes: []float64{2.5, 2.6},
	}

	got := g.Segments()
	if len(got) != 2 {
		t.Fatalf("Segments() returned %d segments, want 2", len(got))
	}

	first := got[0]
	if !reflect.DeepEqual(first.X, []int{93, 94, 95, 96, 97, 98, 99}) {
		t.Errorf("Segments()[0].X = %v", first.X)
	}
	if !reflect.DeepEqual(first.Y, []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5}) {
		t.Errorf("Segments()[0].Y = %v", first.Y)
	}
	if !first.ShowLegend || got[1].ShowLegend {
		t.Errorf("Segments() ShowLegend = %v, %v, want only the first", first.ShowLegend, got[1].ShowLegend)
	}
	if first.Hover.End != 100 || first.Hover.Length != 7 || first.Hover.Score == nil || *first.Hover.Score != 5 {
		t.Errorf("Segments()[0].Hover = %+v", first.Hover)
	}
	if first.Color != "#ff7f0e" || first.Name != "run2" || first.LegendGroup != "CSV Peptides" || first.Group != 2 {
		t.Errorf("Segments()[0] = %+v", first)
	}

	second := got[1]
	if !reflect.DeepEqual(second.X, []int{50, 51}) || !reflect.DeepEqual(second.Y, []float64{2.6, 2.6}) {
		t.Errorf("Segments()[1] x = %v, y = %v", second.X, second.Y)
	}
	if second.Label != "HG" || second.Text != "Peptide: HG<br>Start: 50<br>End: 52<br>Length: 2<br>Score: 2.0<br>" {
		t.Errorf("Segments()[1] label = %s, text = %s", second.Label, second.Text)
	}
}

func TestGroup_Segments_unscored(t *testing.T) {
	g := &Group{
		Name:        inputName,
		LegendGroup: inputLegendGroup,
		Occurrences: []Occurrence{{Peptide: "ABC", Start: 0}},
		Lanes:       []float64{0},
	}

	got := g.Segments()
	if got[0].Hover.Score != nil {
		t.Errorf("Segments()[0].Hover.Score = %v, want nil", *got[0].Hover.Score)
	}
	if got[0].Color != "#000000" || got[0].Name != "Digested Peptides" || got[0].LegendGroup != "Input Peptides" {
		t.Errorf("Segments()[0] = %+v", got[0])
	}
}
