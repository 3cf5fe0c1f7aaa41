package overlay

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MannLabs/peptide-overlay/config"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// GroupSummary describes where a group sits in the plot.
type GroupSummary struct {
	// Name is the legend entry, "Digested Peptides" or the dataset's name
	Name string `json:"name" yaml:"name"`

	// Color is the hex color the group is drawn in
	Color string `json:"color" yaml:"color"`

	// Baseline is the lowest lane of the group
	Baseline float64 `json:"baseline" yaml:"baseline"`

	// Top is the highest lane of the group
	Top float64 `json:"top" yaml:"top"`

	// Occurrences is the number of peptide matches in the group
	Occurrences int `json:"occurrences" yaml:"occurrences"`

	// MeanScore is the mean score of a dataset's matches
	MeanScore *float64 `json:"meanScore,omitempty" yaml:"meanScore,omitempty"`

	// NotFound is the number of peptides missing from the sequence
	NotFound int `json:"notFound" yaml:"notFound"`
}

// Output is a struct containing the layout of the peptides on the protein.
type Output struct {
	// Target's name. In >sp|P69905|HBA_HUMAN FASTA its "sp|P69905|HBA_HUMAN"
	Target string `json:"target" yaml:"target"`

	// Target's sequence
	TargetSeq string `json:"seq" yaml:"seq"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time" yaml:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution" yaml:"execution"`

	// Offset is the lane step between overlapping peptides
	Offset float64 `json:"offset" yaml:"offset"`

	// OffsetFile is the gap between groups
	OffsetFile float64 `json:"offsetFile" yaml:"offsetFile"`

	Groups []GroupSummary `json:"groups" yaml:"groups"`

	Segments []Segment `json:"segments" yaml:"segments"`

	// Warnings for each peptide not found in the sequence
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// newOutput collects the groups' segments, warnings and summaries.
func newOutput(name, seq string, groups []*Group, conf *config.Config, seconds float64) *Output {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	out := &Output{
		Target:     name,
		TargetSeq:  seq,
		Time:       fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()),
		Execution:  seconds,
		Offset:     conf.Offset,
		OffsetFile: conf.OffsetFile,
		Segments:   []Segment{},
		Warnings:   []string{},
	}

	for _, g := range groups {
		out.Groups = append(out.Groups, summarize(g))
		out.Segments = append(out.Segments, g.Segments()...)
		out.Warnings = append(out.Warnings, g.Warnings...)
	}

	return out
}

// summarize a group, the mean score skips rows without a numeric score.
func summarize(g *Group) GroupSummary {
	s := GroupSummary{
		Name:        g.Name,
		Color:       Color(g.Index),
		Baseline:    g.Baseline,
		Top:         g.Top(),
		Occurrences: len(g.Occurrences),
		NotFound:    len(g.Warnings),
	}

	var scores []float64
	for _, score := range g.Scores() {
		if !math.IsNaN(score) {
			scores = append(scores, score)
		}
	}
	if len(scores) > 0 {
		mean := stat.Mean(scores, nil)
		s.MeanScore = &mean
	}

	return s
}

// writeOutput serializes the output to YAML if the filename ends in .yaml/.yml, and JSON otherwise.
func writeOutput(filename string, out *Output) (err error) {
	var b []byte
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(out)
	default:
		b, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("failed to write the output: %w", err)
	}

	return nil
}
