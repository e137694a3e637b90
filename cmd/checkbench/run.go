package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexshd/checkbench"
)

func (a *app) runCmd() *cobra.Command {
	flags := defaultRunOptions()
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure variants and print a report",
		Long: `Measure every selected (suite, variant, category) case and print a report.

Each case runs in --warmup-forks discarded and --forks measured child
processes. Settings come from the defaults, then --config, then any flag
given on the command line.`,
		Example: `  checkbench run --suite integer --format json
  checkbench run --variant two-pointer,half --category long-palindrome --forks 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveRunOptions(cmd.Flags(), flags, configPath)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), opts)
		},
	}

	bindRunFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with run settings")
	return cmd
}

func (a *app) run(ctx context.Context, opts runOptions) error {
	reporter, err := checkbench.NewReporter(opts.format, a.stdout, opts.verbose)
	if err != nil {
		return err
	}

	ws, err := newWorkspace(opts.seed, opts.size)
	if err != nil {
		return err
	}
	cases := ws.registry.Cases(opts.filter)
	if len(cases) == 0 {
		return fmt.Errorf("%w: nothing matches suites=%v variants=%v categories=%v",
			checkbench.ErrUnknownCase, opts.filter.Suites, opts.filter.Variants, opts.filter.Categories)
	}

	command, err := a.forkCommand(opts)
	if err != nil {
		return err
	}

	cfg := opts.bench
	cfg.Logger = a.logger
	a.logger.Info("run starting",
		"cases", len(cases),
		"forks", cfg.Forks,
		"warmup_forks", cfg.WarmupForks,
		"iterations", cfg.Iterations,
		"iteration_time", cfg.IterationTime)

	started := time.Now()
	results, err := checkbench.Measure(ctx, cases, cfg, command)
	if err != nil {
		return err
	}

	summaries, err := checkbench.Summarize(results, cfg.ConfidenceLevel)
	if err != nil {
		return err
	}
	a.logger.Info("run finished", "cases", len(summaries), "elapsed", time.Since(started).Round(time.Millisecond))

	return reporter.Report(checkbench.NewReport(started, cfg, ws.digests(), summaries))
}

// forkCommand re-executes this binary in fork mode with the settings that
// shape one measurement.
func (a *app) forkCommand(opts runOptions) (checkbench.CommandFunc, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}

	shared := []string{
		"--seed", strconv.FormatInt(opts.seed, 10),
		"--size", strconv.Itoa(opts.size),
		"--warmup-iterations", strconv.Itoa(opts.bench.WarmupIterations),
		"--iterations", strconv.Itoa(opts.bench.Iterations),
		"--iteration-time", opts.bench.IterationTime.String(),
		"--batch", strconv.Itoa(opts.bench.Batch),
		"--confidence", strconv.FormatFloat(opts.bench.ConfidenceLevel, 'f', -1, 64),
		"--log-level", a.logLevel,
	}

	return func(ctx context.Context, id checkbench.CaseID, fork int) *exec.Cmd {
		args := append([]string{"fork", "--case", id.String(), "--fork", strconv.Itoa(fork)}, shared...)
		return exec.CommandContext(ctx, exe, args...)
	}, nil
}
