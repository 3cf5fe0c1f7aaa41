package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Flags contains parsed cobra Flags like "in", "seq", "peptides", etc that are used by multiple commands.
type Flags struct {
	// the name of the protein, its FASTA ID if read from a file
	name string

	// the protein sequence
	seq string

	// comma separated peptides, split as is
	peptides string

	// paths to CSV datasets with Sequence and Score columns
	datasets []string

	// the name of the file to write the output to
	out string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
// The sequence is read from the FASTA file at in when seq is empty.
func NewFlags(in, seq, peptides string, datasets []string, out string) (*Flags, error) {
	p := inputParser{}

	name, parsedSeq, err := p.parseSequence(in, seq)
	if err != nil {
		return nil, err
	}

	return &Flags{
		name:     name,
		seq:      parsedSeq,
		peptides: peptides,
		datasets: datasets,
		out:      out,
	}, nil
}

// parseCmdFlags gathers the sequence, peptides, datasets and out path from a cobra cmd object.
// ext is the suffix of the output file if none is specified.
func parseCmdFlags(cmd *cobra.Command, args []string, ext string) (*Flags, error) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}

	in, _ := cmd.Flags().GetString("in")
	seq, _ := cmd.Flags().GetString("seq")
	if fs.name, fs.seq, err = p.parseSequence(in, seq); err != nil {
		return nil, err
	}

	if fs.peptides, err = cmd.Flags().GetString("peptides"); err != nil || fs.peptides == "" {
		fs.peptides = parsePeptideArgs(args)
	}
	if fs.peptides == "" {
		return nil, fmt.Errorf("no peptides passed")
	}

	if fs.datasets, err = cmd.Flags().GetStringSlice("csv"); err != nil {
		return nil, fmt.Errorf("failed to parse datasets: %w", err)
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(in, ext)
	}

	return fs, nil
}

// parseSequence returns the sequence passed directly or, if there isn't one,
// the first record of the FASTA file at in (or the first one in the current directory).
func (p *inputParser) parseSequence(in, seq string) (name, parsed string, err error) {
	if seq != "" {
		return "sequence", seq, nil
	}

	if in == "" {
		if in, err = p.guessInput(); err != nil {
			return "", "", err
		}
	}

	return readSequence(in)
}

// parsePeptideArgs joins positional peptides into a comma separated list.
// Peptides are not trimmed, "a, b" stays as the two peptides "a" and " b".
func parsePeptideArgs(args []string) string {
	return strings.Join(args, ",")
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file or sequence.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToUpper(filepath.Ext(file.Name()))
		if ext == ".FA" || ext == ".FASTA" || ext == ".FAA" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no sequence set and no fasta file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path is
// specified). It uses the same name as the input path to create an output.
func (p *inputParser) guessOutput(in, ext string) (out string) {
	if in == "" {
		return "pepoverlay" + ext
	}

	noExt := in[0 : len(in)-len(filepath.Ext(in))]
	return noExt + ext
}
