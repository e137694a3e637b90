package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
)

func (a *app) datasetCmd() *cobra.Command {
	var (
		seed    int64
		size    int
		samples int
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Print corpus digests and sample items",
		Long: `Print the digest of every generated corpus and category, with a few sample
items each. Equal digests on two machines mean both measure the same inputs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("%w: size must be positive, got %d", checkbench.ErrInvalidConfig, size)
			}
			ws, err := newWorkspace(seed, size)
			if err != nil {
				return err
			}

			for _, c := range ws.corpora {
				fmt.Fprintf(a.stdout, "%s  %s items per category  digest %s\n", c.Name(), humanize.Comma(int64(c.Len())), c.CorpusDigest())

				rows := lo.Map(c.Categories(), func(cat string, _ int) []string {
					items := lo.Slice(c.Items(cat), 0, samples)
					return []string{cat, c.Digest(cat), fmt.Sprintf("%q", items)}
				})
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("category", "digest", "samples").
					Rows(rows...)
				fmt.Fprintln(a.stdout, t.Render())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", dataset.Seed, "corpus generator seed")
	cmd.Flags().IntVar(&size, "size", dataset.Size, "items per category")
	cmd.Flags().IntVar(&samples, "samples", 3, "sample items shown per category")
	return cmd
}
