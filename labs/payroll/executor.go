package payroll

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrFutureTimeout is returned by Future.Wait when the computation does
// not complete within the deadline.
var ErrFutureTimeout = errors.New("future: timed out waiting for result")

// DefaultWait bounds how long the interactive paths wait on one future.
const DefaultWait = 5 * time.Second

// Task is a unit of work submitted to the Executor.
type Task func() (float64, error)

type futureResult struct {
	value float64
	err   error
}

// Future is the handle to a submitted Task.
type Future struct {
	done chan futureResult
}

// Wait blocks until the task completes or timeout elapses.
func (f *Future) Wait(timeout time.Duration) (float64, error) {
	select {
	case res := <-f.done:
		return res.value, res.err
	case <-time.After(timeout):
		return 0, ErrFutureTimeout
	}
}

type submission struct {
	task   Task
	future *Future
}

// Executor is a fixed-size pool of worker goroutines draining a task
// queue, the thread-pool half of the lab.
type Executor struct {
	tasks chan submission
	wg    sync.WaitGroup
}

// NewExecutor starts a pool with the given number of workers.
func NewExecutor(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	e := &Executor{tasks: make(chan submission, workers)}
	for i := 0; i < workers; i++ {
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			for s := range e.tasks {
				value, err := s.task()
				s.future.done <- futureResult{value: value, err: err}
			}
		}()
	}
	return e
}

// Submit queues a task and returns its Future.
func (e *Executor) Submit(task Task) *Future {
	f := &Future{done: make(chan futureResult, 1)}
	e.tasks <- submission{task: task, future: f}
	return f
}

// Close stops the workers after draining queued tasks.
func (e *Executor) Close() {
	close(e.tasks)
	e.wg.Wait()
}

// ComputeParallel submits the four deduction computations for one salary
// as independent units of work and assembles the resolved futures into
// one Deductions record.
func ComputeParallel(exec *Executor, salary float64) (Deductions, error) {
	sss := exec.Submit(func() (float64, error) { return SSS(salary) })
	philhealth := exec.Submit(func() (float64, error) { return PhilHealth(salary) })
	pagibig := exec.Submit(func() (float64, error) { return PagIBIG(salary) })
	tax := exec.Submit(func() (float64, error) { return Tax(salary) })

	var d Deductions
	var err error
	if d.SSS, err = sss.Wait(DefaultWait); err != nil {
		return Deductions{}, fmt.Errorf("sss: %w", err)
	}
	if d.PhilHealth, err = philhealth.Wait(DefaultWait); err != nil {
		return Deductions{}, fmt.Errorf("philhealth: %w", err)
	}
	if d.PagIBIG, err = pagibig.Wait(DefaultWait); err != nil {
		return Deductions{}, fmt.Errorf("pagibig: %w", err)
	}
	if d.Tax, err = tax.Wait(DefaultWait); err != nil {
		return Deductions{}, fmt.Errorf("tax: %w", err)
	}
	return d, nil
}
