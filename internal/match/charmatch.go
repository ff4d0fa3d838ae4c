package match

// CharMatch scores the character-multiset overlap of two header strings in
// [0, 1]. Both inputs are normalized first. The target is treated as a
// consumable multiset: each observed character either removes one occurrence
// from the target or counts as unmatched. The score is
//
//	1 - (unmatched + remaining) / (len(target) + len(observed))
//
// so identical strings and anagrams score 1.0 and disjoint character sets
// score 0.0. Character order is ignored; this is a cheap typo heuristic, not
// edit distance.
func CharMatch(target, observed string) float64 {
	t := NormalizeHeader(target)
	o := NormalizeHeader(observed)

	if len(t) == 0 && len(o) == 0 {
		return 1.0
	}
	if len(t) == 0 || len(o) == 0 {
		return 0.0
	}

	pool := make(map[rune]int, len(t))
	targetLen := 0
	for _, r := range t {
		pool[r]++
		targetLen++
	}

	unmatched := 0
	remaining := targetLen
	observedLen := 0
	for _, r := range o {
		observedLen++
		if pool[r] > 0 {
			pool[r]--
			remaining--
			continue
		}
		unmatched++
	}

	return 1.0 - float64(unmatched+remaining)/float64(targetLen+observedLen)
}
