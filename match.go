package typeface

// ClosestInstance returns the instance whose declared style best
// matches target, and whether the family has any instance at all.
//
// Matching is an explicit deterministic score, not fuzzy: weight
// distance is the primary criterion, a slant mismatch breaks weight
// ties, and remaining ties go to the first-declared instance.
func (f *Family) ClosestInstance(target FontStyle) (Instance, bool) {
	if f == nil || len(f.instances) == 0 {
		return Instance{}, false
	}
	best := f.instances[0]
	bestScore := styleScore(best.Style, target)
	for _, inst := range f.instances[1:] {
		if score := styleScore(inst.Style, target); score < bestScore {
			best = inst
			bestScore = score
		}
	}
	return best, true
}

// styleScore ranks candidate against target. Lower is better.
// Weight distance dominates: the mismatch penalty (1) is always
// smaller than one step of doubled weight distance, so slant only
// decides between candidates at the same weight distance.
func styleScore(candidate, target FontStyle) int {
	d := candidate.Weight - target.Weight
	if d < 0 {
		d = -d
	}
	score := d * 2
	if candidate.Slant != target.Slant {
		score++
	}
	return score
}
