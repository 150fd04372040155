package workflow

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// printMu keeps each buffered task block contiguous on the console in
// parallel mode. It is the only contended shared resource here.
var printMu sync.Mutex

// RunSequential executes every task one after another, writing output
// directly to out. Returns the total elapsed time.
func RunSequential(tasks []Task, out io.Writer) time.Duration {
	start := time.Now()
	for _, task := range tasks {
		RunTask(task, out)
	}
	return time.Since(start)
}

// RunParallel executes one goroutine per task. Each run buffers its
// output and writes the whole block under the print mutex, so task
// outputs never interleave. Returns the total elapsed time.
func RunParallel(tasks []Task, out io.Writer) time.Duration {
	start := time.Now()
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			var buf bytes.Buffer
			RunTask(task, &buf)

			printMu.Lock()
			_, err := buf.WriteTo(out)
			printMu.Unlock()
			if err != nil {
				logrus.WithError(err).Error("flushing task output failed")
			}
		}(task)
	}
	wg.Wait()
	return time.Since(start)
}
