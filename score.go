package pathscore

// Options configures scoring behavior.
type Options struct {
	// CaseSensitive disables case folding during matching. The original
	// casing always drives the camelCase transition bonus, folded or not.
	CaseSensitive bool

	// AlwaysShowDotFiles permits matching into a dot-file segment even
	// when the needle character aligned there is not '.'.
	AlwaysShowDotFiles bool

	// NeverShowDotFiles forbids matching into any dot-file segment,
	// overriding AlwaysShowDotFiles.
	NeverShowDotFiles bool

	// ComputeAllScorings selects the exhaustive best-alignment search.
	// When false, each search frame keeps the first feasible position it
	// finds, trading score accuracy for speed on deep candidate sets.
	ComputeAllScorings bool
}

// DefaultOptions returns the options an interactive finder usually
// wants: case-insensitive, dot files hidden unless searched for, and
// the exhaustive search.
func DefaultOptions() Options {
	return Options{ComputeAllScorings: true}
}

// Scorer computes subsequence relevance scores under a fixed set of
// options. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	opts Options
}

// NewScorer creates a scorer with the given options.
func NewScorer(opts Options) *Scorer {
	return &Scorer{opts: opts}
}

// Score returns the relevance of haystack for needle, in [0, 1]. Zero
// means no match. Both bitmasks are computed internally; callers that
// can cache masks across calls should use ScoreWithMask instead.
func (s *Scorer) Score(haystack, needle string) float64 {
	score, _ := s.ScoreWithMask(haystack, needle, ComputeBitmask(needle), 0)
	return score
}

// ScoreWithMask is Score with the mask-caching protocol exposed.
// needleMask must be ComputeBitmask(needle), computed once per query.
// haystackMask is the cached mask for haystack, or zero when unknown;
// a nonzero mask is trusted as-is and enables the O(1) prefilter. The
// returned mask equals the input when it was nonzero, and otherwise
// carries whatever this call computed (which may still be zero when the
// haystack was never scanned, or contains no letters).
func (s *Scorer) ScoreWithMask(haystack, needle string, needleMask, haystackMask Bitmask) (float64, Bitmask) {
	if len(needle) == 0 {
		// An empty query matches everything the dot-file policy shows.
		if !s.opts.AlwaysShowDotFiles && isDotFile(haystack) {
			return 0, haystackMask
		}
		return 1, haystackMask
	}
	if len(haystack) == 0 {
		return 0, haystackMask
	}

	if haystackMask != 0 && !haystackMask.Contains(needleMask) {
		return 0, haystackMask
	}

	computeMask := haystackMask == 0
	bounds, mask, ok := scanFeasibility(haystack, needle, s.opts.CaseSensitive, computeMask)
	if computeMask {
		haystackMask = mask
	}
	if !ok {
		return 0, haystackMask
	}

	m := &matchInfo{
		haystack:        haystack,
		needle:          needle,
		bounds:          bounds,
		maxScorePerChar: (1.0/float64(len(haystack)) + 1.0/float64(len(needle))) / 2,
		opts:            s.opts,
		memo:            newMemoTable(len(needle), bounds[len(needle)-1]+1),
	}

	score := m.bestScore(0, 0)
	if score == scoreNoMatch {
		return 0, haystackMask
	}
	return score, haystackMask
}

// isDotFile reports whether haystack itself names a dot file: a '.' at
// position 0 or immediately after a path separator anywhere in it.
func isDotFile(haystack string) bool {
	for i := 0; i < len(haystack); i++ {
		if haystack[i] == '.' && (i == 0 || haystack[i-1] == '/') {
			return true
		}
	}
	return false
}
