package checkbench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrForkFailed is returned when a child process exits with an error or
// prints something other than the result of the case it was asked to run.
var ErrForkFailed = errors.New("fork failed")

// CommandFunc builds the child process that measures case id. fork counts
// from zero across warm-up and measured forks. The child must run the case
// in-process and print its results with WriteResults on stdout.
type CommandFunc func(ctx context.Context, id CaseID, fork int) *exec.Cmd

// Forker measures each case in fresh child processes. Nothing a case leaves
// behind in the heap or caches is visible to the next one.
type Forker struct {
	Command CommandFunc
	Config  Config
}

// NewForker creates a Forker.
func NewForker(command CommandFunc, cfg Config) *Forker {
	return &Forker{Command: command, Config: cfg}
}

// Run measures every case in Config.WarmupForks discarded forks followed by
// Config.Forks measured ones, and merges the measured iterations per case.
// Forks run one at a time. The first failing child aborts the run.
func (f *Forker) Run(ctx context.Context, cases []Case) ([]Result, error) {
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	if f.Config.Forks == 0 {
		return nil, fmt.Errorf("%w: forker needs at least one measured fork", ErrInvalidConfig)
	}

	log := f.Config.logger()
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		merged := Result{Case: c.ID}
		total := f.Config.WarmupForks + f.Config.Forks

		for fork := 0; fork < total; fork++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			r, err := f.runFork(ctx, c.ID, fork)
			if err != nil {
				return nil, err
			}

			if fork < f.Config.WarmupForks {
				log.Debug("warm-up fork discarded", "case", c.ID.String(), "fork", fork)
				continue
			}

			measured := fork - f.Config.WarmupForks + 1
			merged.Warmup = append(merged.Warmup, stamp(r.Warmup, measured)...)
			merged.Measured = append(merged.Measured, stamp(r.Measured, measured)...)
		}

		log.Info("case measured",
			"case", c.ID.String(),
			"forks", f.Config.Forks,
			"iterations", len(merged.Measured))
		results = append(results, merged)
	}

	return results, nil
}

func (f *Forker) runFork(ctx context.Context, id CaseID, fork int) (Result, error) {
	cmd := f.Command(ctx, id, fork)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("%w: %s fork %d: %v: %s",
			ErrForkFailed, id, fork, err, strings.TrimSpace(stderr.String()))
	}

	results, err := ReadResults(&stdout)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s fork %d: %v", ErrForkFailed, id, fork, err)
	}
	if len(results) != 1 || results[0].Case != id {
		return Result{}, fmt.Errorf("%w: %s fork %d: expected one result for the case, got %d",
			ErrForkFailed, id, fork, len(results))
	}
	return results[0], nil
}

func stamp(its []Iteration, fork int) []Iteration {
	out := make([]Iteration, len(its))
	for i, it := range its {
		it.Fork = fork
		out[i] = it
	}
	return out
}

// Measure runs cases in forks when cfg.Forks is positive and in the current
// process otherwise.
func Measure(ctx context.Context, cases []Case, cfg Config, command CommandFunc) ([]Result, error) {
	if cfg.Forks == 0 {
		return Run(ctx, cases, cfg)
	}
	return NewForker(command, cfg).Run(ctx, cases)
}

// WriteResults encodes results as the JSON a child process prints.
func WriteResults(w io.Writer, results []Result) error {
	return json.NewEncoder(w).Encode(results)
}

// ReadResults decodes what WriteResults wrote.
func ReadResults(r io.Reader) ([]Result, error) {
	var results []Result
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return results, nil
}
