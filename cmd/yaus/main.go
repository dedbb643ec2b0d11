package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikMuellerDev/yaus/internal/build"
	"github.com/MikMuellerDev/yaus/internal/logger"
)

func main() {
	logger.Init()

	rootCmd := &cobra.Command{
		Use:     "yaus",
		Short:   "Yet another URL shortener",
		Long:    "YAUS registers short ids that redirect to long URLs, behind a single-credential management API.",
		Version: build.Version,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
