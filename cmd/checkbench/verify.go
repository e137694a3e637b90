package main

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
	"github.com/alexshd/checkbench/integer"
	"github.com/alexshd/checkbench/palindrome"
)

var errVerifyFailed = errors.New("verification failed")

type check struct {
	name       string
	inputs     int
	mismatches []checkbench.Mismatch
}

func (a *app) verifyCmd() *cobra.Command {
	var (
		seed   int64
		size   int
		show   int
		suites []string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every variant against the oracle and each other",
		Long: `Check every variant against the canonical oracle inputs, against the
labels of the generated corpora, and against the first variant of its suite
on every generated item. Exits non-zero on any disagreement.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("%w: size must be positive, got %d", checkbench.ErrInvalidConfig, size)
			}
			ws, err := newWorkspace(seed, size)
			if err != nil {
				return err
			}

			selected := ws.registry.Suites()
			if len(suites) > 0 {
				selected = nil
				for _, name := range suites {
					s, ok := ws.registry.Suite(name)
					if !ok {
						return fmt.Errorf("%w: suite %q", checkbench.ErrUnknownCase, name)
					}
					selected = append(selected, s)
				}
			}

			var checks []check
			for _, s := range selected {
				checks = append(checks, oracleChecks(s.Name)...)
				checks = append(checks, corpusChecks(s)...)
			}
			return a.report(checks, show)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", dataset.Seed, "corpus generator seed")
	cmd.Flags().IntVar(&size, "size", dataset.Size, "items per corpus category")
	cmd.Flags().StringSliceVar(&suites, "suite", nil, "suites to verify (default all)")
	cmd.Flags().IntVar(&show, "show", 5, "mismatches printed per failing check")
	return cmd
}

// oracleChecks runs the canonical oracle tables of one suite.
func oracleChecks(suite string) []check {
	run := func(name string, variants []checkbench.Variant, cases []checkbench.Expectation) check {
		return check{name: name, inputs: len(cases), mismatches: checkbench.CheckContract(variants, cases)}
	}

	switch suite {
	case "integer":
		return []check{run("integer oracle", integer.Variants(), integer.Oracle())}
	case "palindrome":
		normalized, _ := palindrome.Lookup("normalized")
		return []check{
			run("palindrome oracle", palindrome.Exact(), palindrome.Oracle()),
			run("normalized oracle", []checkbench.Variant{normalized}, palindrome.NormalizedOracle()),
		}
	default:
		return nil
	}
}

// corpusChecks checks labels and cross-variant agreement per category.
func corpusChecks(s *checkbench.Suite) []check {
	var out []check
	for _, cat := range s.Categories {
		variants := lo.Filter(s.Variants, func(v checkbench.Variant, _ int) bool { return v.Supports(cat.Name) })
		if len(variants) == 0 {
			continue
		}

		cases := lo.FilterMap(cat.Items, func(in string, _ int) (checkbench.Expectation, bool) {
			want, ok := dataset.Label(cat.Name, in)
			return checkbench.Expectation{Input: checkbench.Text(in), Want: want}, ok
		})
		if len(cases) > 0 {
			out = append(out, check{
				name:       fmt.Sprintf("%s/%s labels", s.Name, cat.Name),
				inputs:     len(cases),
				mismatches: checkbench.CheckContract(variants, cases),
			})
		}

		out = append(out, check{
			name:       fmt.Sprintf("%s/%s agreement", s.Name, cat.Name),
			inputs:     len(cat.Items),
			mismatches: checkbench.CheckEquivalent(variants, cat.Items),
		})
	}
	return out
}

func (a *app) report(checks []check, show int) error {
	failed := 0
	for _, c := range checks {
		if len(c.mismatches) == 0 {
			fmt.Fprintf(a.stdout, "ok    %-40s %d inputs\n", c.name, c.inputs)
			continue
		}

		failed++
		fmt.Fprintf(a.stdout, "FAIL  %-40s %d mismatches\n", c.name, len(c.mismatches))
		for _, m := range lo.Slice(c.mismatches, 0, show) {
			fmt.Fprintf(a.stdout, "      %s\n", m)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks", errVerifyFailed, failed, len(checks))
	}
	a.logger.Info("all checks passed", "checks", len(checks))
	return nil
}
