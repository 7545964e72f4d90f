package pathscore

// Bitmask records which ASCII letters occur in a string, case-folded.
// Bit i is set when the letter 'a'+i appears at least once. The zero
// mask doubles as "not yet computed" in the caching protocol, so a
// haystack containing no letters simply gets rescanned on every call.
type Bitmask uint32

// ComputeBitmask scans s once and returns its letter-presence mask.
// Bytes outside a-z and A-Z contribute nothing.
func ComputeBitmask(s string) Bitmask {
	var mask Bitmask
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z':
			mask |= 1 << (c - 'a')
		case c >= 'A' && c <= 'Z':
			mask |= 1 << (c - 'A')
		}
	}
	return mask
}

// Contains reports whether every letter present in n is also present in
// m. A haystack mask that does not contain the needle mask can never
// produce a match; the reverse implies nothing.
func (m Bitmask) Contains(n Bitmask) bool {
	return m&n == n
}
