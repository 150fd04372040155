package payroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// WorkerArg is the hidden subcommand that turns the binary into a
// payroll worker process.
const WorkerArg = "payroll-worker"

// job and jobResult cross the process boundary as newline-delimited JSON.
type job struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
}

type jobResult struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Salary     float64    `json:"salary"`
	Deductions Deductions `json:"deductions"`
	Err        string     `json:"err,omitempty"`
}

// RunWorker is the body of a spawned payroll worker process. It reads
// employee jobs from in, one JSON object per line, runs the full
// deduction pipeline for each, and writes one result per line to out. A
// bad salary produces an error result for that employee, never an exit.
func RunWorker(in io.Reader, out io.Writer) error {
	dec := json.NewDecoder(in)
	enc := json.NewEncoder(out)
	log := logrus.WithField("pid", os.Getpid())

	for {
		var j job
		if err := dec.Decode(&j); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("payroll worker: decode job: %w", err)
		}

		res := jobResult{ID: j.ID, Name: j.Name, Salary: j.Salary}
		d, err := ComputeAll(j.Salary)
		if err != nil {
			log.WithError(err).Warnf("rejecting employee %s", j.Name)
			res.Err = err.Error()
		} else {
			res.Deductions = d
			log.Infof("computed deductions for %s", j.Name)
		}

		if err := enc.Encode(&res); err != nil {
			return fmt.Errorf("payroll worker: encode result: %w", err)
		}
	}
}

// BatchFailure records one employee whose unit of work failed.
type BatchFailure struct {
	EmployeeID uuid.UUID
	Name       string
	Reason     string
}

// newWorkerCmd builds the command for one pool worker process. It is a
// variable so tests can re-exec the test binary instead.
var newWorkerCmd = func() (*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return exec.Command(exe, WorkerArg), nil
}

// ProcessBatch distributes employees across a fixed pool of worker
// processes, one employee per unit of work, and collects the completed
// payslips. Workers answer in their own time, so payslips are
// re-associated with employees by ID. A failed record is reported in the
// failures slice and never aborts the batch.
func ProcessBatch(employees []Employee, workers int) ([]Payslip, []BatchFailure, error) {
	if len(employees) == 0 {
		return nil, nil, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(employees) {
		workers = len(employees)
	}

	jobs := make(chan Employee)
	results := make(chan jobResult, len(employees))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		cmd, err := newWorkerCmd()
		if err != nil {
			close(jobs)
			return nil, nil, fmt.Errorf("locate worker binary: %w", err)
		}
		stdin, err := cmd.StdinPipe()
		if err != nil {
			close(jobs)
			return nil, nil, err
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			close(jobs)
			return nil, nil, err
		}
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			close(jobs)
			return nil, nil, fmt.Errorf("start worker process: %w", err)
		}

		wg.Add(1)
		go func(id int, cmd *exec.Cmd, stdin io.WriteCloser, stdout io.Reader) {
			defer wg.Done()
			runPoolWorker(id, stdin, stdout, jobs, results)
			stdin.Close()
			if err := cmd.Wait(); err != nil {
				logrus.WithField("worker", id).WithError(err).Error("payroll worker exited abnormally")
			}
		}(i+1, cmd, stdin, stdout)
	}

	for _, emp := range employees {
		jobs <- emp
	}
	close(jobs)
	wg.Wait()
	close(results)

	byID := make(map[string]Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID.String()] = emp
	}

	var payslips []Payslip
	var failures []BatchFailure
	for res := range results {
		emp, ok := byID[res.ID]
		if !ok {
			logrus.Errorf("dropping result for unknown employee id %s", res.ID)
			continue
		}
		if res.Err != "" {
			failures = append(failures, BatchFailure{EmployeeID: emp.ID, Name: emp.Name, Reason: res.Err})
			continue
		}
		payslips = append(payslips, newPayslip(emp, res.Deductions))
	}
	return payslips, failures, nil
}

// runPoolWorker feeds one worker process in lockstep: write a job line,
// read the matching result line. A pipe failure fails the in-flight
// employee only; the remaining jobs go to the other workers.
func runPoolWorker(id int, stdin io.Writer, stdout io.Reader, jobs <-chan Employee, results chan<- jobResult) {
	enc := json.NewEncoder(stdin)
	dec := json.NewDecoder(stdout)
	for emp := range jobs {
		j := job{ID: emp.ID.String(), Name: emp.Name, Salary: emp.Salary}
		if err := enc.Encode(&j); err != nil {
			results <- jobResult{ID: j.ID, Name: j.Name, Err: fmt.Sprintf("write to worker %d: %v", id, err)}
			continue
		}
		var res jobResult
		if err := dec.Decode(&res); err != nil {
			results <- jobResult{ID: j.ID, Name: j.Name, Err: fmt.Sprintf("read from worker %d: %v", id, err)}
			continue
		}
		results <- res
	}
}
