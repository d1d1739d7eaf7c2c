package difflib

// Ratio returns a similarity measure in [0, 1]: 2*M / T where M is the
// total size of the matching blocks and T is len(a)+len(b). It is 1 when
// the sequences are identical and 0 when they share nothing. Ratio is
// expensive to compute unless GetMatchingBlocks or GetOpCodes has already
// been called and cached; QuickRatio and RealQuickRatio give cheaper
// upper bounds useful for filtering before paying for an exact Ratio.
func (m *SequenceMatcher) Ratio() float64 {
	matches := 0
	for _, block := range m.GetMatchingBlocks() {
		matches += block.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio returns an upper bound on Ratio, computed by treating a and
// b as multisets and counting the size of their intersection (so element
// order is ignored). It is cheaper than Ratio because it skips the
// longest-match search entirely.
func (m *SequenceMatcher) QuickRatio() float64 {
	fullCount := map[string]int{}
	for _, line := range m.b {
		fullCount[line]++
	}

	avail := map[string]int{}
	matches := 0
	for _, line := range m.a {
		n, ok := avail[line]
		if !ok {
			n = fullCount[line]
		}
		avail[line] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio returns a looser upper bound on Ratio than QuickRatio,
// computed purely from the sequence lengths.
func (m *SequenceMatcher) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}
