package overlay

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	inputName          = "Digested Peptides"
	inputLegendGroup   = "Input Peptides"
	datasetLegendGroup = "CSV Peptides"
)

// Group is a set of occurrences that share a color and a baseline. Group 0 is
// the input peptides, each dataset is another group above it.
type Group struct {
	// Index is the group's position, 0 for the input peptides
	Index int

	// Name is the legend entry of the group
	Name string

	// LegendGroup ties the group's segments together in a legend
	LegendGroup string

	// Baseline is the lane of occurrences without an earlier overlap
	Baseline float64

	// Occurrences of the group's peptides, in lane assignment order
	Occurrences []Occurrence

	// Lanes is the vertical position of each occurrence
	Lanes []float64

	// Warnings about peptides that weren't found in the sequence
	Warnings []string
}

// Groups locates the peptides (comma separated, without trimming) and each
// dataset's rows in seq, and assigns every occurrence a lane. The input
// peptides are at baseline 0. Each dataset's baseline is the ceiling of
// the highest lane beneath it plus offsetFile.
func Groups(seq, peptides string, datasets []Dataset, offset, offsetFile float64) ([]*Group, error) {
	input, err := inputGroup(seq, peptides, offset)
	if err != nil {
		return nil, err
	}

	groups := []*Group{input}
	ceil := ceiling(input.Lanes, 0)
	for i, ds := range datasets {
		g, err := datasetGroup(i+1, seq, ds, offset, ceil+offsetFile)
		if err != nil {
			return nil, err
		}

		groups = append(groups, g)
		ceil = ceiling(g.Lanes, ceil)
	}

	return groups, nil
}

// inputGroup is group 0, built from the comma separated peptides in list order.
func inputGroup(seq, peptides string, offset float64) (*Group, error) {
	split := strings.Split(peptides, ",")
	for i, p := range split {
		if p == "" {
			return nil, fmt.Errorf("peptide %d of %q: %w", i+1, peptides, ErrEmptyPeptide)
		}
	}

	g := &Group{
		Name:        inputName,
		LegendGroup: inputLegendGroup,
	}
	for _, p := range split {
		occs := occurrences(seq, p, 0, false)
		if len(occs) == 0 {
			g.Warnings = append(g.Warnings, fmt.Sprintf("In-silico peptide %s not found in protein sequence", p))
			continue
		}
		g.Occurrences = append(g.Occurrences, occs...)
	}

	g.Lanes = Lanes(g.Occurrences, Overlaps(g.Occurrences), offset, g.Baseline)
	return g, nil
}

// datasetGroup is the group of a dataset's rows. Occurrences are sorted by
// descending score before lanes are assigned so higher scores sit lower.
func datasetGroup(index int, seq string, ds Dataset, offset, baseline float64) (*Group, error) {
	for i, r := range ds.Records {
		if r.Sequence == "" {
			return nil, fmt.Errorf("row %d of dataset %s: %w", i+1, ds.Name, ErrEmptyPeptide)
		}
	}

	g := &Group{
		Index:       index,
		Name:        ds.Name,
		LegendGroup: datasetLegendGroup,
		Baseline:    baseline,
	}
	for _, r := range ds.Records {
		occs := occurrences(seq, r.Sequence, r.Score, true)
		if len(occs) == 0 {
			g.Warnings = append(g.Warnings, fmt.Sprintf("Peptide %s not found in protein sequence", r.Sequence))
			continue
		}
		g.Occurrences = append(g.Occurrences, occs...)
	}

	sort.SliceStable(g.Occurrences, func(i, j int) bool {
		return higher(g.Occurrences[i].Score, g.Occurrences[j].Score)
	})

	g.Lanes = Lanes(g.Occurrences, Overlaps(g.Occurrences), offset, g.Baseline)
	return g, nil
}

// higher orders scores descending with missing (NaN) scores last.
func higher(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a > b
}

// Top is the highest lane in the group, or the baseline if it's empty.
func (g *Group) Top() float64 {
	top := g.Baseline
	for _, l := range g.Lanes {
		if l > top {
			top = l
		}
	}
	return top
}

// Scores are the scores of the group's occurrences, nil for the input peptides.
func (g *Group) Scores() (scores []float64) {
	for _, o := range g.Occurrences {
		if o.Scored {
			scores = append(scores, o.Score)
		}
	}
	return
}
