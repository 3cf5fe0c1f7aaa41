package cmd

import (
	"github.com/MannLabs/peptide-overlay/internal/overlay"
	"github.com/spf13/cobra"
)

// plotCmd is for drawing the peptides on the protein
var plotCmd = &cobra.Command{
	Use:                        "plot [peptide ...]",
	Short:                      "Plot peptide positions in a protein sequence",
	RunE:                       overlay.PlotCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Plot each peptide's occurrences as lines along the protein sequence.

Peptides are laid out the same as 'pepoverlay layout'. The input peptides
are black, each dataset takes the next color of the palette.
The plot is a PNG if --out ends in .png and an SVG otherwise`,
	Example: "  pepoverlay plot --in HBA_HUMAN.fa --peptides VLSPADK,TNVKAAWGK --csv run1.csv -o peptides.png",
}

func init() {
	inputFlags(plotCmd.Flags())

	RootCmd.AddCommand(plotCmd)
}
