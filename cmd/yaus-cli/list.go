package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var limit uint32

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List redirect mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			urls, err := c.ListURLs(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("could not list redirects: %w", err)
			}

			if len(urls) == 0 {
				fmt.Println("No redirects configured.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("SHORT", "TARGET URL")
			for _, u := range urls {
				t.Row(u.Short, u.TargetURL)
			}
			fmt.Println(t)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&limit, "limit", math.MaxUint32, "maximum number of redirects to list")
	return cmd
}
