package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	plotTitle = "Peptide Positions in the Protein Sequence"
	xAxisName = "Protein Sequence Position"
)

// render draws each segment as a line in its group's color. The file is a
// PNG if filename ends in .png and an SVG otherwise.
func render(filename string, seqLen int, segments []Segment, width, height int) error {
	if len(segments) == 0 {
		return fmt.Errorf("failed to plot: no peptides found in the protein sequence")
	}

	var series, legend []chart.Series
	top := 0.0
	for _, s := range segments {
		xs, ys := linePoints(s)
		if s.Y[0] > top {
			top = s.Y[0]
		}

		line := chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				StrokeWidth: 3,
			},
		}
		series = append(series, line)
		if s.ShowLegend {
			legend = append(legend, line)
		}
	}

	graph := chart.Chart{
		Title:  plotTitle,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  xAxisName,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(seqLen)},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: -0.5, Max: top + 0.5},
		},
		Series: series,
	}

	// only the first segment of each group is in the legend
	legendChart := chart.Chart{Series: legend}
	graph.Elements = []chart.Renderable{chart.Legend(&legendChart)}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create plot: %w", err)
	}
	defer f.Close()

	provider := chart.SVG
	if strings.ToLower(filepath.Ext(filename)) == ".png" {
		provider = chart.PNG
	}

	if err = graph.Render(provider, f); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

// linePoints are the x and y values of a segment's line. A single residue
// is widened to the next position, one point draws nothing.
func linePoints(s Segment) (xs, ys []float64) {
	xs = make([]float64, len(s.X))
	for i, x := range s.X {
		xs[i] = float64(x)
	}
	ys = s.Y

	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}
	return xs, ys
}
