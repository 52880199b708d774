package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "viewer",
	Short: "Catalog viewer command line tools",
	Long:  "Browse the product catalog, inspect the backend and run maintenance jobs from the terminal.",
}

// Execute attaches registered custom commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
