package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikMuellerDev/yaus/internal/store"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <short> <target-url>",
		Short: "Create a redirect mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			u := store.URL{Short: args[0], TargetURL: args[1]}
			if err := c.CreateURL(cmd.Context(), u); err != nil {
				return fmt.Errorf("could not create redirect: %w", err)
			}

			fmt.Printf("Successfully created redirect from %s -> %s\n", u.Short, u.TargetURL)
			return nil
		},
	}
}
