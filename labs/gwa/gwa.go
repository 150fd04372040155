package gwa

import (
	"errors"
	"math"
	"time"
)

// ErrNoGrades is returned when a computation is requested over an empty
// grade list, or when every chunk failed and nothing was aggregated.
var ErrNoGrades = errors.New("no grades to compute")

// Partial is one worker's contribution: the sum and element count of its
// chunk. Aggregation over partials is commutative, so worker completion
// order does not matter.
type Partial struct {
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
}

// Result is the outcome of one computation path.
type Result struct {
	Average float64
	Workers int
	Elapsed time.Duration
}

// Chunk splits grades into contiguous chunks of ceil(len/workers)
// elements. Trailing workers may end up with no chunk at all; those are
// omitted rather than returned empty.
func Chunk(grades []float64, workers int) [][]float64 {
	if workers < 1 || len(grades) == 0 {
		return nil
	}
	size := int(math.Ceil(float64(len(grades)) / float64(workers)))
	var chunks [][]float64
	for start := 0; start < len(grades); start += size {
		end := start + size
		if end > len(grades) {
			end = len(grades)
		}
		chunks = append(chunks, grades[start:end])
	}
	return chunks
}

func combine(partials []Partial) (float64, error) {
	var sum float64
	var count int
	for _, p := range partials {
		sum += p.Sum
		count += p.Count
	}
	if count == 0 {
		return 0, ErrNoGrades
	}
	return sum / float64(count), nil
}
