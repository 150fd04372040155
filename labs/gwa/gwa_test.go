package gwa

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const workerEnv = "GWA_WORKER_PROCESS"

// TestMain doubles as the worker-process entry point when the test binary
// is re-executed by the process-path tests.
func TestMain(m *testing.M) {
	if os.Getenv(workerEnv) == "1" {
		if err := RunWorker(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestChunkProperties(t *testing.T) {
	require := require.New(t)

	grades := []float64{85, 90, 78, 92, 88, 95, 100, 61, 73}
	for workers := 1; workers <= len(grades)+2; workers++ {
		chunks := Chunk(grades, workers)

		var flat []float64
		total := 0
		for _, c := range chunks {
			require.NotEmpty(c)
			total += len(c)
			flat = append(flat, c...)
		}
		require.Equal(len(grades), total)
		require.Equal(grades, flat)
		require.LessOrEqual(len(chunks), workers)
	}
}

func TestChunkEdgeCases(t *testing.T) {
	require := require.New(t)

	require.Nil(Chunk(nil, 4))
	require.Nil(Chunk([]float64{1}, 0))

	chunks := Chunk([]float64{1}, 5)
	require.Len(chunks, 1)
	require.Equal([]float64{1}, chunks[0])
}

func TestComputeThreaded(t *testing.T) {
	require := require.New(t)

	grades := []float64{85, 90, 95, 100}
	for workers := 1; workers <= 4; workers++ {
		res, err := ComputeThreaded(grades, workers)
		require.NoError(err)
		require.InDelta(92.5, res.Average, 1e-9)
	}
}

func TestComputeThreadedMatchesSequential(t *testing.T) {
	require := require.New(t)

	grades := []float64{61.5, 99, 70.25, 88, 93.75, 82, 77.5}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	want := sum / float64(len(grades))

	for workers := 1; workers <= len(grades); workers++ {
		res, err := ComputeThreaded(grades, workers)
		require.NoError(err)
		require.InDelta(want, res.Average, 1e-9)
	}
}

func TestComputeThreadedNoGrades(t *testing.T) {
	require := require.New(t)

	_, err := ComputeThreaded(nil, 3)
	require.ErrorIs(err, ErrNoGrades)
}

func TestCombineSkipsEmptyPartials(t *testing.T) {
	require := require.New(t)

	avg, err := combine([]Partial{{Sum: 180, Count: 2}, {}, {Sum: 95, Count: 1}})
	require.NoError(err)
	require.InDelta(91.666666, avg, 1e-4)

	_, err = combine([]Partial{{}, {}})
	require.ErrorIs(err, ErrNoGrades)
}

func TestRunWorker(t *testing.T) {
	require := require.New(t)

	in := strings.NewReader("[85, 90, 95, 100]")
	var out bytes.Buffer
	require.NoError(RunWorker(in, &out))
	require.JSONEq(`{"sum": 370, "count": 4}`, out.String())
}

func TestRunWorkerBadInput(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	require.Error(RunWorker(strings.NewReader("not json"), &out))
	require.Zero(out.Len())
}

func useTestWorker(t *testing.T) {
	t.Helper()
	restore := newWorkerCmd
	newWorkerCmd = func() (*exec.Cmd, error) {
		cmd := exec.Command(os.Args[0])
		cmd.Env = append(os.Environ(), workerEnv+"=1")
		return cmd, nil
	}
	t.Cleanup(func() { newWorkerCmd = restore })
}

func TestComputeProcesses(t *testing.T) {
	require := require.New(t)
	useTestWorker(t)

	res, err := ComputeProcesses([]float64{85, 90, 95, 100}, 2)
	require.NoError(err)
	require.InDelta(92.5, res.Average, 1e-9)
	require.Equal(2, res.Workers)
}

func TestComputeProcessesMatchesThreaded(t *testing.T) {
	require := require.New(t)
	useTestWorker(t)

	grades := []float64{61.5, 99, 70.25, 88, 93.75}
	threaded, err := ComputeThreaded(grades, 3)
	require.NoError(err)

	procs, err := ComputeProcesses(grades, 3)
	require.NoError(err)
	require.InDelta(threaded.Average, procs.Average, 1e-9)
}

func TestComputeProcessesCapsWorkers(t *testing.T) {
	require := require.New(t)
	useTestWorker(t)

	res, err := ComputeProcesses([]float64{80, 90}, 10)
	require.NoError(err)
	require.InDelta(85, res.Average, 1e-9)
	require.Equal(2, res.Workers)
}

func TestComputeProcessesWorkerFailure(t *testing.T) {
	require := require.New(t)

	restore := newWorkerCmd
	var calls int32
	newWorkerCmd = func() (*exec.Cmd, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// first chunk's worker dies before producing a result
			return exec.Command("false"), nil
		}
		cmd := exec.Command(os.Args[0])
		cmd.Env = append(os.Environ(), workerEnv+"=1")
		return cmd, nil
	}
	defer func() { newWorkerCmd = restore }()

	// One dead worker degrades its chunk, the rest still aggregate.
	res, err := ComputeProcesses([]float64{80, 90, 100, 70}, 4)
	require.NoError(err)
	require.Positive(res.Average)
}
