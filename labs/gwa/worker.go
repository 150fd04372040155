package gwa

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// WorkerArg is the hidden subcommand that turns the binary into a grade
// chunk worker.
const WorkerArg = "gwa-worker"

// RunWorker is the body of a spawned grade worker process. It reads its
// chunk as JSON from in, computes the partial sum and count, and writes
// the Partial as JSON to out. Narration goes to stderr so stdout stays a
// clean result channel.
func RunWorker(in io.Reader, out io.Writer) error {
	var chunk []float64
	if err := json.NewDecoder(in).Decode(&chunk); err != nil {
		return fmt.Errorf("gwa worker: decode chunk: %w", err)
	}

	var p Partial
	for _, g := range chunk {
		p.Sum += g
	}
	p.Count = len(chunk)

	log := logrus.WithField("pid", os.Getpid())
	log.Infof("starting with grades: %v", chunk)
	if p.Count > 0 {
		log.Infof("partial GWA: %.2f", p.Sum/float64(p.Count))
	}
	log.Info("ending")

	if err := json.NewEncoder(out).Encode(p); err != nil {
		return fmt.Errorf("gwa worker: encode partial: %w", err)
	}
	return nil
}
