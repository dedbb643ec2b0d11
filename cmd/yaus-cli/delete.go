package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <short>",
		Short: "Delete a redirect mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			if err := c.DeleteURL(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("could not delete redirect: %w", err)
			}

			fmt.Printf("Successfully deleted redirect %s\n", args[0])
			return nil
		},
	}
}
