package cmd

import (
	"github.com/MannLabs/peptide-overlay/internal/overlay"
	"github.com/spf13/cobra"
)

// findCmd is for listing every position of peptides in a protein
var findCmd = &cobra.Command{
	Use:                        "find [peptide ...]",
	Short:                      "Find peptides in a protein sequence",
	RunE:                       overlay.FindCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Log each position of the peptides in the protein sequence.
Overlapping repeats are all listed: AA is at 0, 1 and 2 of AAAA.`,
	Example: "  pepoverlay find --seq MVLSPADKTNVKAAWGKVGAHAGEYGAEALERMFLSFPTTKTYFPHF VLSPADK GAHAGEYGAE",
	Aliases: []string{"ls", "list"},
}

func init() {
	findCmd.Flags().StringP("in", "i", "", "path to a FASTA file with the protein sequence")
	findCmd.Flags().StringP("seq", "s", "", "protein sequence (instead of --in)")

	RootCmd.AddCommand(findCmd)
}
