package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexshd/checkbench/dataset"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suites, variants and the categories they run on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The corpus size does not change the listing.
			ws, err := newWorkspace(dataset.Seed, 1)
			if err != nil {
				return err
			}

			for _, s := range ws.registry.Suites() {
				rows := make([][]string, 0, len(s.Variants))
				for _, v := range s.Variants {
					cats := "all"
					if v.Categories != nil {
						cats = strings.Join(v.Categories, ", ")
					}
					rows = append(rows, []string{v.Name, v.Technique, cats})
				}

				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers(s.Name, "technique", "categories").
					Rows(rows...)
				fmt.Fprintln(a.stdout, t.Render())
			}
			return nil
		},
	}
}
