package overlay

// Pair is a pair of indexes, I < J, into an ordered slice of occurrences
// whose spans overlap.
type Pair struct {
	I int
	J int
}

// Overlaps returns every pair of occurrences that overlap, in discovery order:
// ascending by I, then by J.
//
// Each start is checked against the span of the other occurrence, where the
// span's length is borrowed from the occurrence being checked:
//
//	start_i in [start_j, start_j+len_i) or start_j in [start_i, start_i+len_j)
//
// This matches standard interval intersection when the two lengths are equal.
func Overlaps(occs []Occurrence) (pairs []Pair) {
	for i := 0; i < len(occs)-1; i++ {
		for j := i + 1; j < len(occs); j++ {
			if overlapping(occs[i], occs[j]) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return
}

func overlapping(a, b Occurrence) bool {
	return (b.Start <= a.Start && a.Start < b.Start+a.Len()) ||
		(a.Start <= b.Start && b.Start < a.Start+b.Len())
}
