package cmd

import (
	"github.com/MannLabs/peptide-overlay/internal/overlay"
	"github.com/spf13/cobra"
)

// layoutCmd is for writing the lane of each peptide to a file
var layoutCmd = &cobra.Command{
	Use:                        "layout [peptide ...]",
	Short:                      "Write the positions and lanes of peptides on a protein",
	RunE:                       overlay.LayoutCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Find every position of each peptide in the protein sequence and assign it a lane.

An occurrence is raised one --offset for each earlier occurrence it overlaps.
The input peptides start at lane 0. Each CSV dataset is another group
whose peptides are sorted by descending Score and start above the highest
lane of the group beneath it (rounded up) plus --offset-file.

The output is JSON, or YAML if --out ends in .yaml or .yml`,
	Example: `  pepoverlay layout --seq MVLSPADKTNVKAAWGKVGAHAGEYGAEALERMFLSFPTTKTYFPHF --peptides VLSPADK,SPADKTNVK
  pepoverlay layout --in HBA_HUMAN.fa --peptides VLSPADK,TNVKAAWGK --csv run1.csv,run2.csv -o layout.yaml`,
}

func init() {
	inputFlags(layoutCmd.Flags())

	RootCmd.AddCommand(layoutCmd)
}
