package suggest

// maxSubstitutions is the mismatch budget for same-length candidates.
const maxSubstitutions = 2

// countMismatches counts positional differences between two equal-length words.
func countMismatches(a, b []rune) int {
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}

// isSubsequence reports whether every rune of in appears in cand, in order.
func isSubsequence(in, cand []rune) bool {
	i := 0
	for j := 0; i < len(in) && j < len(cand); j++ {
		if in[i] == cand[j] {
			i++
		}
	}
	return i == len(in)
}

// isOneDeletion reports whether cand is in with exactly one rune removed.
func isOneDeletion(in, cand []rune) bool {
	if len(cand) != len(in)-1 {
		return false
	}
	i, j := 0, 0
	skipped := false
	for i < len(in) && j < len(cand) {
		if in[i] != cand[j] {
			if skipped {
				return false
			}
			skipped = true
			i++
			continue
		}
		i++
		j++
	}
	return true
}

// isLengthVariant applies the length rules: one or two extra runes with in as
// a subsequence, or exactly one rune dropped from in.
func isLengthVariant(in, cand []rune) bool {
	switch len(cand) - len(in) {
	case 1, 2:
		return isSubsequence(in, cand)
	case -1:
		return isOneDeletion(in, cand)
	}
	return false
}
