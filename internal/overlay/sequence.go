package overlay

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// readSequence returns the ID and residues of the first record in a FASTA file.
// Residues are returned as written, without any validation or case folding.
func readSequence(path string) (name, seq string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input file: %w", err)
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.Protein))
	s, err := r.Read()
	if err == io.EOF {
		return "", "", fmt.Errorf("failed to parse a sequence from %s", path)
	} else if err != nil {
		return "", "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	residues := make([]byte, s.Len())
	for i := range residues {
		residues[i] = byte(s.At(i).L)
	}
	if len(residues) == 0 {
		return "", "", fmt.Errorf("failed to parse a sequence from %s: %s is empty", path, s.Name())
	}

	return s.Name(), string(residues), nil
}
