package ladder

// NotFound is the sentinel ordinal for an unknown rank name. Callers must
// check for it before using an index.
const NotFound = -1

// Ladder is the ordered progression of rank names for one game. Divisional
// tiers expand to three sub-ranks each ("<tier> 3" → "<tier> 1", worst
// first), followed by the single ranks in the given order. Immutable after
// construction.
type Ladder struct {
	ranks []string
	index map[string]int
}

func New(tiers []string, singles []string) *Ladder {
	ranks := make([]string, 0, len(tiers)*3+len(singles))
	for _, tier := range tiers {
		ranks = append(ranks, tier+" 3", tier+" 2", tier+" 1")
	}
	ranks = append(ranks, singles...)

	index := make(map[string]int, len(ranks))
	for i, r := range ranks {
		index[r] = i
	}
	return &Ladder{ranks: ranks, index: index}
}

func (l *Ladder) IndexOf(rank string) int {
	if i, ok := l.index[rank]; ok {
		return i
	}
	return NotFound
}

// StepsUp returns indexOf(to) - indexOf(from). Any non-positive result means
// the transition is not a strict rank increase; unknown ranks yield a value
// below -len(ladder) so they can never masquerade as a valid step count.
func (l *Ladder) StepsUp(from, to string) int {
	i := l.IndexOf(from)
	j := l.IndexOf(to)
	if i == NotFound || j == NotFound {
		return NotFound - len(l.ranks)
	}
	return j - i
}

func (l *Ladder) Rank(i int) string {
	if i < 0 || i >= len(l.ranks) {
		return ""
	}
	return l.ranks[i]
}

func (l *Ladder) Len() int {
	return len(l.ranks)
}

// Ranks returns a copy of the full progression, worst rank first.
func (l *Ladder) Ranks() []string {
	out := make([]string, len(l.ranks))
	copy(out, l.ranks)
	return out
}
