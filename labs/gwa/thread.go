package gwa

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// printMu keeps each worker's narration block contiguous on the console.
// It is the only contended shared resource in the thread path.
var printMu sync.Mutex

// ComputeThreaded computes the GWA by partitioning grades across worker
// goroutines sharing memory. Partial results are handed off over a
// buffered channel and combined by the caller's goroutine.
func ComputeThreaded(grades []float64, workers int) (Result, error) {
	if len(grades) == 0 {
		return Result{}, ErrNoGrades
	}
	chunks := Chunk(grades, workers)
	start := time.Now()

	results := make(chan Partial, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(id int, chunk []float64) {
			defer wg.Done()
			results <- threadWorker(id, chunk)
		}(i+1, chunk)
		logrus.WithField("worker", i+1).Info("worker started")
	}
	wg.Wait()
	close(results)

	partials := make([]Partial, 0, len(chunks))
	for p := range results {
		partials = append(partials, p)
	}

	avg, err := combine(partials)
	if err != nil {
		return Result{}, err
	}
	return Result{Average: avg, Workers: len(chunks), Elapsed: time.Since(start)}, nil
}

func threadWorker(id int, chunk []float64) Partial {
	var p Partial
	for _, g := range chunk {
		p.Sum += g
	}
	p.Count = len(chunk)

	printMu.Lock()
	log := logrus.WithField("worker", id)
	log.Info("starting computation")
	if p.Count == 0 {
		log.Warn("no grades in chunk")
	} else {
		log.Infof("grades: %v", chunk)
		log.Infof("partial GWA: %.2f", p.Sum/float64(p.Count))
		log.Info("finished")
	}
	printMu.Unlock()

	return p
}
