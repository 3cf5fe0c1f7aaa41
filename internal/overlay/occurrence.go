package overlay

import "strings"

// Occurrence is a single literal match of a peptide within the protein sequence.
type Occurrence struct {
	// Peptide is the fragment text that matched
	Peptide string

	// Start is the 0-based index of the first residue of the match
	Start int

	// Score is the dataset score of the row the peptide came from
	Score float64

	// Scored is whether the occurrence came from a scored dataset
	Scored bool
}

// End is the exclusive end index of the occurrence.
func (o Occurrence) End() int {
	return o.Start + len(o.Peptide)
}

// Len is the number of residues in the occurrence.
func (o Occurrence) Len() int {
	return len(o.Peptide)
}

// FindAll returns the start index of every match of peptide in seq, ascending.
// Each search resumes one residue after the previous match's start, so
// overlapping repeats are all reported: FindAll("AAAA", "AA") is [0 1 2].
//
// peptide must not be empty.
func FindAll(seq, peptide string) (starts []int) {
	if peptide == "" {
		return nil
	}

	for start := 0; start <= len(seq); {
		i := strings.Index(seq[start:], peptide)
		if i < 0 {
			break
		}

		starts = append(starts, start+i)
		start += i + 1
	}

	return starts
}

// occurrences wraps each match of peptide in seq as an Occurrence.
func occurrences(seq, peptide string, score float64, scored bool) (occs []Occurrence) {
	for _, start := range FindAll(seq, peptide) {
		occs = append(occs, Occurrence{
			Peptide: peptide,
			Start:   start,
			Score:   score,
			Scored:  scored,
		})
	}
	return
}
