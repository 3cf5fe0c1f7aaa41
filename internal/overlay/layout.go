package overlay

// Layout turns a protein sequence, a comma separated list of peptides and
// any scored datasets into drawable segments, with a warning for each peptide
// that isn't in the sequence. It's pure: the same inputs give the same
// segments in the same order.
//
// An error is returned if any peptide, or a dataset row's sequence, is empty.
func Layout(seq, peptides string, datasets []Dataset, offset, offsetFile float64) (segments []Segment, warnings []string, err error) {
	groups, err := Groups(seq, peptides, datasets, offset, offsetFile)
	if err != nil {
		return nil, nil, err
	}

	for _, g := range groups {
		segments = append(segments, g.Segments()...)
		warnings = append(warnings, g.Warnings...)
	}
	return segments, warnings, nil
}
