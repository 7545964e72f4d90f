package pathscore

// memoTable caches aligner results over the trapezoidal region of
// reachable (needleIndex, haystackIndex) pairs: needleIndex <=
// haystackIndex, and haystackIndex below haystackLimit (one past the
// rightmost bound of the last needle character). Row k therefore spans
// haystack indices [k, haystackLimit), and rows are packed contiguously
// into a single buffer so the table costs exactly the region it covers.
type memoTable struct {
	needleLen     int
	haystackLimit int
	cells         []memoCell
}

// memoCell tags a score with whether it has been computed, so no real
// score value has to be reserved as an "unset" marker.
type memoCell struct {
	score float64
	known bool
}

func newMemoTable(needleLen, haystackLimit int) *memoTable {
	size := needleLen*haystackLimit - needleLen*(needleLen-1)/2
	return &memoTable{
		needleLen:     needleLen,
		haystackLimit: haystackLimit,
		cells:         make([]memoCell, size),
	}
}

// index maps a (needleIdx, haystackIdx) pair to its packed cell offset.
// Pairs outside the trapezoid are caller bugs, not cache misses.
func (t *memoTable) index(needleIdx, haystackIdx int) int {
	if needleIdx < 0 || needleIdx >= t.needleLen ||
		haystackIdx < needleIdx || haystackIdx >= t.haystackLimit {
		panic("pathscore: memo index outside the reachable region")
	}
	rowStart := needleIdx*t.haystackLimit - needleIdx*(needleIdx-1)/2
	return rowStart + haystackIdx - needleIdx
}

func (t *memoTable) get(needleIdx, haystackIdx int) (float64, bool) {
	cell := t.cells[t.index(needleIdx, haystackIdx)]
	return cell.score, cell.known
}

// put records score for the pair and returns it, so aligner frames can
// memoize on their return path.
func (t *memoTable) put(needleIdx, haystackIdx int, score float64) float64 {
	t.cells[t.index(needleIdx, haystackIdx)] = memoCell{score: score, known: true}
	return score
}
