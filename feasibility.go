package pathscore

// scanFeasibility walks the haystack once, backward, and records for
// each needle index the rightmost haystack index at which that needle
// character can still match while leaving room for every later needle
// character at strictly increasing positions. ok is false when the
// needle is not a subsequence of the haystack at all, in which case
// bounds is incomplete and must not be used.
//
// When computeMask is set the same sweep also builds the haystack's
// letter bitmask, saving a second traversal on cache misses.
func scanFeasibility(haystack, needle string, caseSensitive, computeMask bool) (bounds []int, mask Bitmask, ok bool) {
	bounds = make([]int, len(needle))
	needleIdx := len(needle) - 1

	for i := len(haystack) - 1; i >= 0; i-- {
		c := haystack[i]
		lower := toLower(c)
		if !caseSensitive {
			c = lower
		}
		if computeMask && lower >= 'a' && lower <= 'z' {
			mask |= 1 << (lower - 'a')
		}

		if needleIdx >= 0 {
			d := needle[needleIdx]
			if !caseSensitive {
				d = toLower(d)
			}
			if c == d {
				bounds[needleIdx] = i
				needleIdx--
			}
		} else if !computeMask {
			// Needle fully located and no mask wanted; the rest of the
			// haystack has nothing left to tell us.
			break
		}
	}

	return bounds, mask, needleIdx < 0
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
