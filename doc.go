// Package pathscore scores how well a query string could be typed as a
// subsequence of a candidate path.
//
// The score answers one question for an incremental fuzzy finder: given
// the characters typed so far (the needle) and one candidate string (the
// haystack, typically a file path), how good is the best alignment of
// needle characters onto haystack positions? Scores land in [0, 1].
// Zero means no match; a match of the whole needle at natural word and
// path boundaries approaches 1 regardless of how long the haystack is
// relative to the needle. Ranking candidates against each other is the
// caller's job; this package only produces the per-candidate number.
//
// # Pipeline
//
// Each scoring call runs a fixed pipeline:
//
//   - a 26-bit letter bitmask prefilter rejects haystacks missing a
//     letter the needle requires, in O(1) once the mask is known
//   - a single backward scan proves the needle is a subsequence of the
//     haystack at all, and records the rightmost usable haystack index
//     for each needle character
//   - a memoized recursive search explores the surviving alignments,
//     weighing each matched character by where it lands: adjacent to
//     the previous match, after a path separator, at a camelCase
//     boundary, after punctuation, or adrift in the middle of a word
//
// # Usage
//
// Basic usage:
//
//	scorer := pathscore.NewScorer(pathscore.DefaultOptions())
//	score := scorer.Score("internal/input/fuzzy/matcher.go", "fzmat")
//
// Hosts that rescore a stable candidate set on every keystroke should
// precompute the needle mask once per query and cache haystack masks
// across calls:
//
//	needleMask := pathscore.ComputeBitmask(needle)
//	score, mask := scorer.ScoreWithMask(haystack, needle, needleMask, cachedMask)
//	// persist mask for the next query against the same haystack
//
// BatchScorer packages that protocol up for whole candidate slices,
// with a worker pool and an optional MaskCache.
//
// # Dot files
//
// A path component starting with '.' is a dot-file segment. By default a
// match may not enter one unless the needle character aligned there is
// itself '.'. Options.AlwaysShowDotFiles lifts the restriction and
// Options.NeverShowDotFiles makes it unconditional.
//
// # Concurrency
//
// Scorer and BatchScorer are safe for concurrent use; every call
// allocates its own scratch state. MaskCache is internally synchronized.
package pathscore
