package overlay

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Palette is the color of each dataset group, reused once there are more
// datasets than colors.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// inputColor is the color of the input peptides
const inputColor = "#000000"

// Color returns the draw color of a group.
func Color(group int) string {
	if group <= 0 {
		return inputColor
	}
	return Palette[(group-1)%len(Palette)]
}

// Hover is the metadata shown when pointing at a segment.
type Hover struct {
	Peptide string   `json:"peptide" yaml:"peptide"`
	Start   int      `json:"start" yaml:"start"`
	End     int      `json:"end" yaml:"end"`
	Length  int      `json:"length" yaml:"length"`
	Score   *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// Text is the hover as HTML lines, for renderers that show hover text.
func (h Hover) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Peptide: %s<br>", h.Peptide)
	fmt.Fprintf(&sb, "Start: %d<br>", h.Start)
	fmt.Fprintf(&sb, "End: %d<br>", h.End)
	fmt.Fprintf(&sb, "Length: %d<br>", h.Length)
	if h.Score != nil {
		fmt.Fprintf(&sb, "Score: %s<br>", scoreText(*h.Score))
	}
	return sb.String()
}

// scoreText formats whole scores with one decimal, 30 -> 30.0, and others
// with as few digits as needed.
func scoreText(score float64) string {
	if score == math.Trunc(score) && math.Abs(score) < 1e16 {
		return strconv.FormatFloat(score, 'f', 1, 64)
	}
	return strconv.FormatFloat(score, 'g', -1, 64)
}

// Segment is a drawable line for one occurrence: a run of consecutive
// sequence positions at a constant lane.
type Segment struct {
	// X is every position covered by the occurrence, [start, start+length-1]
	X []int `json:"x" yaml:"x"`

	// Y is the occurrence's lane, once per position in X
	Y []float64 `json:"y" yaml:"y"`

	// Label is the peptide text
	Label string `json:"label" yaml:"label"`

	// Group is the index of the group the occurrence belongs to
	Group int `json:"group" yaml:"group"`

	// Name is the legend entry of the segment's group
	Name string `json:"name" yaml:"name"`

	// LegendGroup ties the segments of a group together in a legend
	LegendGroup string `json:"legendGroup" yaml:"legendGroup"`

	// ShowLegend is only set on the first segment of each group
	ShowLegend bool `json:"showLegend" yaml:"showLegend"`

	// Color is the hex draw color
	Color string `json:"color" yaml:"color"`

	Hover Hover  `json:"hover" yaml:"hover"`
	Text  string `json:"text" yaml:"text"`
}

// Segments returns one segment per occurrence in the group's order.
func (g *Group) Segments() []Segment {
	segments := make([]Segment, len(g.Occurrences))
	for i, o := range g.Occurrences {
		x := make([]int, o.Len())
		y := make([]float64, o.Len())
		for k := range x {
			x[k] = o.Start + k
			y[k] = g.Lanes[i]
		}

		hover := Hover{
			Peptide: o.Peptide,
			Start:   o.Start,
			End:     o.End(),
			Length:  o.Len(),
		}
		if o.Scored && !math.IsNaN(o.Score) {
			score := o.Score
			hover.Score = &score
		}

		segments[i] = Segment{
			X:           x,
			Y:           y,
			Label:       o.Peptide,
			Group:       g.Index,
			Name:        g.Name,
			LegendGroup: g.LegendGroup,
			ShowLegend:  i == 0,
			Color:       Color(g.Index),
			Hover:       hover,
			Text:        hover.Text(),
		}
	}
	return segments
}
