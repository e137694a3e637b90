// Command checkbench measures and verifies the predicate variants.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
	logger   *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: slog.Default()}

	root := &cobra.Command{
		Use:   "checkbench",
		Short: "Benchmark harness for string predicate variants",
		Long: `checkbench measures interchangeable implementations of the same string
predicate (32-bit integer recognition and palindrome detection) against
seeded corpora, in forked child processes, and reports mean time per call
with confidence intervals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.stderr, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		a.runCmd(),
		a.forkCmd(),
		a.verifyCmd(),
		a.listCmd(),
		a.datasetCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger, lerr := newLogger(os.Stderr, "error")
		if lerr != nil {
			logger = slog.Default()
		}
		logger.Error("checkbench failed", "err", err)
		os.Exit(1)
	}
}
