package gwa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// newWorkerCmd builds the command for one chunk worker process. It is a
// variable so tests can re-exec the test binary instead.
var newWorkerCmd = func() (*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return exec.Command(exe, WorkerArg), nil
}

// ComputeProcesses computes the GWA by partitioning grades across
// isolated OS processes. Chunks and partials cross the process boundary
// as JSON over stdin/stdout; there is no shared memory. A failed worker
// degrades only its own chunk's contribution.
func ComputeProcesses(grades []float64, workers int) (Result, error) {
	if len(grades) == 0 {
		return Result{}, ErrNoGrades
	}
	if workers > len(grades) {
		workers = len(grades)
	}
	chunks := Chunk(grades, workers)
	start := time.Now()

	results := make(chan Partial, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(id int, chunk []float64) {
			defer wg.Done()
			p, err := spawnWorker(chunk)
			if err != nil {
				logrus.WithField("worker", id).WithError(err).Error("chunk worker failed")
				return
			}
			results <- p
		}(i+1, chunk)
		logrus.WithField("worker", i+1).Info("worker process started")
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

func spawnWorker(chunk []float64) (Partial, error) {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return Partial{}, fmt.Errorf("marshal chunk: %w", err)
	}

	cmd, err := newWorkerCmd()
	if err != nil {
		return Partial{}, fmt.Errorf("locate worker binary: %w", err)
	}
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return Partial{}, fmt.Errorf("run worker process: %w", err)
	}

	var p Partial
	if err := json.Unmarshal(out, &p); err != nil {
		return Partial{}, fmt.Errorf("decode worker result: %w", err)
	}
	return p, nil
}
