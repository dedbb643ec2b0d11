package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <short>",
		Short: "Show the target of a redirect mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			u, err := c.GetURL(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("could not get target of redirect: %w", err)
			}

			fmt.Printf("Redirect %s\n=> %s\n", u.Short, u.TargetURL)
			return nil
		},
	}
}
