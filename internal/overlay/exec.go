package overlay

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MannLabs/peptide-overlay/config"
	"github.com/spf13/cobra"
)

// LayoutCmd accepts a cobra command and writes the lanes of each peptide to a JSON or YAML file.
func LayoutCmd(cmd *cobra.Command, args []string) error {
	flags, err := parseCmdFlags(cmd, args, ".output.json")
	if err != nil {
		cmd.Help()
		return err
	}

	conf, err := newConfig()
	if err != nil {
		return err
	}

	_, err = Run(flags, conf)
	return err
}

// PlotCmd accepts a cobra command and renders the peptides on the protein to an SVG or PNG.
func PlotCmd(cmd *cobra.Command, args []string) error {
	flags, err := parseCmdFlags(cmd, args, ".svg")
	if err != nil {
		cmd.Help()
		return err
	}

	conf, err := newConfig()
	if err != nil {
		return err
	}

	return Plot(flags, conf)
}

// FindCmd logs the positions of each peptide passed as an argument.
func FindCmd(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		cmd.Help()
		return fmt.Errorf("no peptides passed")
	}

	in, _ := cmd.Flags().GetString("in")
	seq, _ := cmd.Flags().GetString("seq")
	flags, err := NewFlags(in, seq, parsePeptideArgs(args), nil, "")
	if err != nil {
		return err
	}

	return find(cmd.OutOrStdout(), flags.seq, strings.Split(flags.peptides, ","))
}

// newConfig reads the config and checks that the offsets are in range.
func newConfig() (*config.Config, error) {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Run lays out the peptides and datasets on the protein sequence and writes
// the result to the flags' output path, if there is one.
func Run(flags *Flags, conf *config.Config) (*Output, error) {
	start := time.Now()

	groups, err := layoutGroups(flags, conf)
	if err != nil {
		return nil, err
	}

	out := newOutput(flags.name, flags.seq, groups, conf, time.Since(start).Seconds())
	if flags.out != "" {
		if err := writeOutput(flags.out, out); err != nil {
			return nil, err
		}
		stderr.Debugf("wrote layout to %s", flags.out)
	}

	return out, nil
}

// Plot lays out the peptides and datasets and renders them to the flags' output path.
func Plot(flags *Flags, conf *config.Config) error {
	groups, err := layoutGroups(flags, conf)
	if err != nil {
		return err
	}

	var segments []Segment
	for _, g := range groups {
		segments = append(segments, g.Segments()...)
	}

	if err := render(flags.out, len(flags.seq), segments, conf.PlotWidth, conf.PlotHeight); err != nil {
		return err
	}
	stderr.Debugf("wrote plot to %s", flags.out)
	return nil
}

// layoutGroups reads the datasets, in order, before any are searched and
// logs a warning for each peptide not in the sequence.
func layoutGroups(flags *Flags, conf *config.Config) ([]*Group, error) {
	datasets := make([]Dataset, 0, len(flags.datasets))
	for _, path := range flags.datasets {
		ds, err := ReadDataset(path)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}

	groups, err := Groups(flags.seq, flags.peptides, datasets, conf.Offset, conf.OffsetFile)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		for _, w := range g.Warnings {
			stderr.Warn(w)
		}
	}

	return groups, nil
}

// find writes each peptide's occurrences in seq as rows of a table.
func find(w io.Writer, seq string, peptides []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "peptide\tstart\tend\tlength")

	for _, p := range peptides {
		if p == "" {
			return ErrEmptyPeptide
		}

		starts := FindAll(seq, p)
		if len(starts) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t%d\n", p, len(p))
			continue
		}
		for _, s := range starts {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", p, s, s+len(p), len(p))
		}
	}

	return tw.Flush()
}
