// Package main is the entry point for the warband API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warband-api",
	Short: "Warband Roster API Server",
	Long:  `Warband API provides an HTTP/JSON interface for building, costing, and validating skirmish warband rosters.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
