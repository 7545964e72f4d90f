package pathscore

import "math"

// scoreNoMatch marks an aligner frame that cannot complete the needle.
// It never escapes the package; Score normalizes it to 0 at the
// boundary.
var scoreNoMatch = math.Inf(-1)

// matchInfo carries the per-call state shared by every aligner frame.
// It is built fresh for each scoring call and never shared.
type matchInfo struct {
	haystack        string
	needle          string
	bounds          []int // rightmost usable haystack index per needle index
	maxScorePerChar float64
	opts            Options
	memo            *memoTable
}

// bestScore returns the best achievable score matching needle[needleIdx:]
// against haystack[haystackIdx:], or scoreNoMatch when no complete
// alignment exists from here.
func (m *matchInfo) bestScore(haystackIdx, needleIdx int) float64 {
	if needleIdx == len(m.needle) {
		// Whole needle consumed; nothing left to score.
		return 0
	}
	if needleIdx > haystackIdx ||
		haystackIdx+(len(m.needle)-needleIdx) > m.bounds[len(m.needle)-1]+1 {
		// Not enough haystack left for the remaining needle characters.
		return scoreNoMatch
	}
	if score, known := m.memo.get(needleIdx, haystackIdx); known {
		return score
	}

	c := m.needle[needleIdx]
	if !m.opts.CaseSensitive {
		c = toLower(c)
	}

	score := scoreNoMatch
	for i := haystackIdx; i <= m.bounds[needleIdx]; i++ {
		d := m.haystack[i]
		if d == '.' && (i == 0 || m.haystack[i-1] == '/') {
			// Start of a dot-file segment. Unless policy admits the
			// match, the entire frame is abandoned: positions past the
			// segment are never tried, in either scoring mode.
			dotSearch := m.needle[needleIdx] == '.'
			if m.opts.NeverShowDotFiles || (!dotSearch && !m.opts.AlwaysShowDotFiles) {
				return m.memo.put(needleIdx, haystackIdx, scoreNoMatch)
			}
		} else if !m.opts.CaseSensitive {
			d = toLower(d)
		}

		if c != d {
			continue
		}

		charScore := m.maxScorePerChar
		if distance := i - haystackIdx; distance > 1 {
			charScore *= transitionFactor(distance, m.haystack[i-1], m.haystack[i])
		}

		if candidate := charScore + m.bestScore(i+1, needleIdx+1); candidate > score {
			score = candidate
			if !m.opts.ComputeAllScorings {
				// Greedy mode: the first feasible position wins.
				break
			}
		}
	}

	return m.memo.put(needleIdx, haystackIdx, score)
}

// transitionFactor weights a match at a haystack position reached from
// distance characters past the start of its search window (distance is
// always > 1 here; closer matches score full value). prev and curr keep
// their original casing so the camelCase bonus survives case-insensitive
// matching.
func transitionFactor(distance int, prev, curr byte) float64 {
	switch {
	case prev == '/':
		return 0.9
	case prev == '-' || prev == '_' || prev == ' ':
		return 0.8
	case prev >= '0' && prev <= '9':
		return 0.8
	case prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z':
		return 0.8
	case prev == '.':
		return 0.7
	default:
		// Nothing special behind the match; its value diminishes the
		// further it drifts from the window start.
		return 0.75 / float64(distance)
	}
}
