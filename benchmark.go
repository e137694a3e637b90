package checkbench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	// ErrInvalidConfig is returned by Config.Validate and by everything that
	// validates a Config before running.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNoSamples is returned when a case has no inputs or no measured
	// iterations to summarize.
	ErrNoSamples = errors.New("no samples")
)

// Config controls benchmark execution.
type Config struct {
	Forks            int           `json:"forks"`             // Measured child processes per case (0 = run in-process)
	WarmupForks      int           `json:"warmup_forks"`      // Child processes per case whose results are discarded
	WarmupIterations int           `json:"warmup_iterations"` // Iterations per fork excluded from statistics
	Iterations       int           `json:"iterations"`        // Measured iterations per fork
	IterationTime    time.Duration `json:"iteration_time_ns"` // Wall time of one iteration
	Batch            int           `json:"batch"`             // Invocations between clock reads
	ConfidenceLevel  float64       `json:"confidence_level"`  // 0.90, 0.95 or 0.99
	Logger           *slog.Logger  `json:"-"`                 // Nil logs to slog.Default()
}

// DefaultConfig returns the settings of the reference harness: one warm-up
// fork, two measured forks, three warm-up and five measured one-second
// iterations each.
func DefaultConfig() Config {
	return Config{
		Forks:            2,
		WarmupForks:      1,
		WarmupIterations: 3,
		Iterations:       5,
		IterationTime:    1 * time.Second,
		Batch:            1024,
		ConfidenceLevel:  0.99,
	}
}

// Validate checks every field. The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Forks < 0:
		return fmt.Errorf("%w: forks must be non-negative, got %d", ErrInvalidConfig, c.Forks)
	case c.WarmupForks < 0:
		return fmt.Errorf("%w: warmup forks must be non-negative, got %d", ErrInvalidConfig, c.WarmupForks)
	case c.WarmupIterations < 0:
		return fmt.Errorf("%w: warmup iterations must be non-negative, got %d", ErrInvalidConfig, c.WarmupIterations)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case c.IterationTime <= 0:
		return fmt.Errorf("%w: iteration time must be positive, got %v", ErrInvalidConfig, c.IterationTime)
	case c.Batch <= 0:
		return fmt.Errorf("%w: batch must be positive, got %d", ErrInvalidConfig, c.Batch)
	case c.ConfidenceLevel != 0.90 && c.ConfidenceLevel != 0.95 && c.ConfidenceLevel != 0.99:
		return fmt.Errorf("%w: confidence level must be 0.90, 0.95 or 0.99, got %v", ErrInvalidConfig, c.ConfidenceLevel)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Iteration is one timed stretch of invocations.
type Iteration struct {
	Fork        int           `json:"fork"`
	Invocations int64         `json:"invocations"`
	Hits        int64         `json:"hits"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// NsPerOp is the average cost of one invocation in nanoseconds.
func (it Iteration) NsPerOp() float64 {
	if it.Invocations == 0 {
		return 0
	}
	return float64(it.Elapsed.Nanoseconds()) / float64(it.Invocations)
}

// Result holds every iteration recorded for one case.
type Result struct {
	Case     CaseID      `json:"case"`
	Warmup   []Iteration `json:"warmup"`
	Measured []Iteration `json:"measured"`
}

// Run measures cases one after another in the current process.
//
// One Cursor and one Blackhole serve the whole run. Each case gets
// cfg.WarmupIterations warm-up iterations, which statistics ignore, followed
// by cfg.Iterations measured ones. The context is checked between iterations;
// a panicking predicate is not recovered.
func Run(ctx context.Context, cases []Case, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		cur  Cursor
		sink Blackhole
		log  = cfg.logger()
	)

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		result, err := runCase(ctx, c, &cur, &sink, cfg)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.ID, err)
		}
		log.Debug("case measured",
			"case", c.ID.String(),
			"iterations", len(result.Measured),
			"cursor", cur.Position())
		results = append(results, result)
	}

	return results, nil
}

// runCase runs the warm-up and measurement phases of one case.
func runCase(ctx context.Context, c Case, cur *Cursor, sink *Blackhole, cfg Config) (Result, error) {
	if len(c.Items) == 0 {
		return Result{}, ErrNoSamples
	}

	result := Result{
		Case:     c.ID,
		Warmup:   make([]Iteration, 0, cfg.WarmupIterations),
		Measured: make([]Iteration, 0, cfg.Iterations),
	}

	for i := 0; i < cfg.WarmupIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		result.Warmup = append(result.Warmup, runIteration(c, cur, sink, cfg))
	}

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		result.Measured = append(result.Measured, runIteration(c, cur, sink, cfg))
	}

	return result, nil
}

// runIteration invokes the predicate in batches until cfg.IterationTime has
// elapsed. The clock is read once per batch.
func runIteration(c Case, cur *Cursor, sink *Blackhole, cfg Config) Iteration {
	var (
		items  = c.Items
		check  = c.Check
		before = sink.Hits()
		ops    int64
	)

	start := time.Now()
	deadline := start.Add(cfg.IterationTime)
	for {
		for i := 0; i < cfg.Batch; i++ {
			sink.Consume(check(items[cur.Next(len(items))]))
		}
		ops += int64(cfg.Batch)

		if now := time.Now(); !now.Before(deadline) {
			return Iteration{
				Invocations: ops,
				Hits:        sink.Hits() - before,
				Elapsed:     now.Sub(start),
			}
		}
	}
}
