// Package cmd is for command line interactions with the pepoverlay application
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/MannLabs/peptide-overlay/internal/overlay"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// prof is the running profile, if one was requested with --profile
var prof interface{ Stop() }

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "pepoverlay",
	Short: `Map peptides onto a protein sequence.
Overlapping peptides are stacked into lanes and each scored dataset gets its own band`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		overlay.SetVerbose(verbose)

		p, _ := cmd.Flags().GetString("profile")
		switch strings.ToLower(p) {
		case "":
		case "cpu":
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			prof = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("invalid profile: %s", p)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfile()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// execute runs the root command. PersistentPostRun is skipped when a
// command fails so the profile is stopped here too.
func execute() error {
	err := RootCmd.Execute()
	if err != nil {
		stopProfile()
	}
	return err
}

// stopProfile flushes the running profile, if there is one.
func stopProfile() {
	if prof != nil {
		prof.Stop()
		prof = nil
	}
}

func init() {
	RootCmd.PersistentFlags().Float64("offset", 0.1, "lane step between overlapping peptides (0.001-1.0)")
	RootCmd.PersistentFlags().Float64("offset-file", 0.5, "gap between the input peptides and each dataset (0.001-1.0)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log parsed datasets and output paths")
	RootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the current directory")

	// Bind the offsets to viper, they can also be set in settings.yaml
	viper.BindPFlag("offset", RootCmd.PersistentFlags().Lookup("offset"))
	viper.BindPFlag("offset-file", RootCmd.PersistentFlags().Lookup("offset-file"))
}

// inputFlags adds the flags for a protein sequence, its peptides, the scored
// datasets and an output path.
func inputFlags(fs *pflag.FlagSet) {
	fs.StringP("in", "i", "", "path to a FASTA file with the protein sequence")
	fs.StringP("seq", "s", "", "protein sequence (instead of --in)")
	fs.StringP("peptides", "p", "", "comma separated peptides, not trimmed")
	fs.StringSliceP("csv", "c", nil, "comma separated CSV files with a header with Sequence and Score columns")
	fs.StringP("out", "o", "", "output file name")
}
