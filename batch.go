package pathscore

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrCanceled is returned by BatchScorer when the context ends before
// every haystack has been scored.
var ErrCanceled = errors.New("pathscore: scoring canceled")

// BatchScorer scores slices of haystacks against one needle using a
// worker pool. Scores come back in input order; ranking them is the
// caller's job. An optional MaskCache carries haystack bitmasks across
// calls so repeated queries skip the prefilter scan.
type BatchScorer struct {
	scorer     *Scorer
	numWorkers int
	masks      *MaskCache
}

// NewBatchScorer creates a batch scorer on top of scorer. If numWorkers
// is not positive it defaults to runtime.NumCPU().
// Panics if scorer is nil.
func NewBatchScorer(scorer *Scorer, numWorkers int) *BatchScorer {
	if scorer == nil {
		panic("pathscore: NewBatchScorer called with nil scorer")
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &BatchScorer{
		scorer:     scorer,
		numWorkers: numWorkers,
	}
}

// SetMaskCache attaches a mask cache. A nil cache disables caching.
// Not safe to call concurrently with ScoreAll.
func (b *BatchScorer) SetMaskCache(cache *MaskCache) {
	b.masks = cache
}

// ScoreAll scores every haystack against needle and returns the scores
// in input order. The needle mask is computed once for the whole batch.
// On cancellation it returns ErrCanceled and no partial results.
func (b *BatchScorer) ScoreAll(ctx context.Context, haystacks []string, needle string) ([]float64, error) {
	scores := make([]float64, len(haystacks))
	needleMask := ComputeBitmask(needle)

	chunkSize := (len(haystacks) + b.numWorkers - 1) / b.numWorkers
	if chunkSize < 64 {
		chunkSize = 64
	}

	var wg sync.WaitGroup
	for start := 0; start < len(haystacks); start += chunkSize {
		end := start + chunkSize
		if end > len(haystacks) {
			end = len(haystacks)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				scores[i] = b.scoreOne(haystacks[i], needle, needleMask)
			}
		}(start, end)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ErrCanceled
	}
	return scores, nil
}

// scoreOne scores a single haystack, consulting and feeding the mask
// cache when one is attached.
func (b *BatchScorer) scoreOne(haystack, needle string, needleMask Bitmask) float64 {
	var haystackMask Bitmask
	if b.masks != nil {
		if mask, ok := b.masks.Get(haystack); ok {
			haystackMask = mask
		}
	}

	score, mask := b.scorer.ScoreWithMask(haystack, needle, needleMask, haystackMask)

	if b.masks != nil && haystackMask == 0 && mask != 0 {
		b.masks.Set(haystack, mask)
	}
	return score
}
