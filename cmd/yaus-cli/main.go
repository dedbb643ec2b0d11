package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikMuellerDev/yaus/internal/build"
	"github.com/MikMuellerDev/yaus/internal/client"
	"github.com/MikMuellerDev/yaus/internal/config"
)

var (
	flagURL      string
	flagUsername string
	flagPassword string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "yaus-cli",
		Short:   "Manage redirects on a YAUS server",
		Long:    "yaus-cli talks to the management API of a YAUS server to create, delete, inspect, and list redirect mappings.",
		Version: build.Version,
	}

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "management username (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "management password (overrides config)")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient loads the CLI config, applies flag overrides, and connects to
// the server, probing /api/auth so bad credentials fail before the actual
// command runs.
func newClient(ctx context.Context) (*client.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		// Flags can stand in for a missing config file, but only if they
		// include the server URL.
		if flagURL == "" {
			return nil, err
		}
		cfg = &config.ClientConfig{}
	}

	if flagURL != "" {
		cfg.URL = flagURL
	}
	if flagUsername != "" {
		cfg.Username = flagUsername
	}
	if flagPassword != "" {
		cfg.Password = flagPassword
	}

	c, err := client.New(ctx, cfg.URL, cfg.Username, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connection: %w", err)
	}
	return c, nil
}
