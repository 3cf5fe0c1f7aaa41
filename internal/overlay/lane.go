package overlay

import "math"

// Lanes returns the vertical lane of each occurrence. An occurrence starts at
// baseline and is raised by offset once for every pair in which it is the
// later (J) member, so it only steps over overlapping occurrences that came
// before it. Lanes are not packed: a lower free lane is never reused.
func Lanes(occs []Occurrence, pairs []Pair, offset, baseline float64) []float64 {
	lanes := make([]float64, len(occs))
	for i := range occs {
		lane := baseline
		for _, p := range pairs {
			if p.J == i {
				lane += offset
			}
		}
		lanes[i] = lane
	}
	return lanes
}

// ceiling is the rounded up max of lanes, or floor if there are no lanes.
func ceiling(lanes []float64, floor float64) float64 {
	if len(lanes) == 0 {
		return floor
	}

	max := lanes[0]
	for _, l := range lanes[1:] {
		if l > max {
			max = l
		}
	}
	return math.Ceil(max)
}
