package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/checkbench"
)

// forkCmd is the child side of run: measure one case in this process and
// print the result as JSON.
func (a *app) forkCmd() *cobra.Command {
	flags := defaultRunOptions()
	var (
		caseID string
		fork   int
	)

	cmd := &cobra.Command{
		Use:    "fork --case suite/variant/category",
		Short:  "Measure one case in this process (used by run)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := checkbench.ParseCaseID(caseID)
			if err != nil {
				return err
			}

			cfg := flags.bench
			cfg.Forks, cfg.WarmupForks = 0, 0
			cfg.Logger = a.logger.With("fork", fork)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if flags.size <= 0 {
				return fmt.Errorf("%w: size must be positive, got %d", checkbench.ErrInvalidConfig, flags.size)
			}
			ws, err := newWorkspace(flags.seed, flags.size)
			if err != nil {
				return err
			}
			c, err := ws.registry.Case(id)
			if err != nil {
				return err
			}

			results, err := checkbench.Run(cmd.Context(), []checkbench.Case{c}, cfg)
			if err != nil {
				return err
			}
			return checkbench.WriteResults(a.stdout, results)
		},
	}

	bindMeasureFlags(cmd.Flags(), &flags)
	cmd.Flags().StringVar(&caseID, "case", "", "case id")
	cmd.Flags().IntVar(&fork, "fork", 0, "fork number, for logs")
	_ = cmd.MarkFlagRequired("case")
	return cmd
}
